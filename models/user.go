package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin account. Password and ResetPasswordSecret only ever hold
// one-way hashes and are never serialized outward.
type User struct {
	ID                  uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Username            string    `json:"username" db:"username" gorm:"type:text;not null;uniqueIndex:idx_user_username"`
	Password            string    `json:"-" db:"password" gorm:"type:text;not null"`
	ResetPasswordSecret *string   `json:"-" db:"reset_password_secret" gorm:"type:text"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
