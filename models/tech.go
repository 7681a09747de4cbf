package models

import (
	"time"

	"github.com/google/uuid"
)

// Tech categories.
const (
	CategoryFrontend = "frontend"
	CategoryBackend  = "backend"
	CategoryDatabase = "database"
	CategoryDevops   = "devops"
	CategoryTool     = "tool"
	CategoryLanguage = "language"
	CategoryOther    = "other"
)

// Tech is a reference record for a technology that projects can point at.
// It never owns the reverse relation.
type Tech struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null;uniqueIndex:idx_tech_name"`
	Slug      string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_tech_slug"`
	Category  string    `json:"category" db:"category" gorm:"type:text;not null;default:other"`
	Icon      *string   `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Website   *string   `json:"website,omitempty" db:"website" gorm:"type:text"`
	Color     *string   `json:"color,omitempty" db:"color" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
