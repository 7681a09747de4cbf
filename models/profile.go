package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ProfileID is the fixed primary key of the singleton profile row. Every
// upsert targets this key, so concurrent writers converge on one record
// instead of racing on "first document found".
var ProfileID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Socials is a fixed-shape set of platform links. Each field is merged by
// presence on PATCH, never by generic map spread.
type Socials struct {
	GitHub    *string `json:"github" db:"social_github" gorm:"type:text;column:social_github"`
	LinkedIn  *string `json:"linkedin" db:"social_linkedin" gorm:"type:text;column:social_linkedin"`
	Twitter   *string `json:"twitter" db:"social_twitter" gorm:"type:text;column:social_twitter"`
	Website   *string `json:"website" db:"social_website" gorm:"type:text;column:social_website"`
	YouTube   *string `json:"youtube" db:"social_youtube" gorm:"type:text;column:social_youtube"`
	Instagram *string `json:"instagram" db:"social_instagram" gorm:"type:text;column:social_instagram"`
}

// Profile is the singleton "user details" document backing the public site.
type Profile struct {
	ID               uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	UserID           *uuid.UUID     `json:"user,omitempty" db:"user_id" gorm:"type:uuid;uniqueIndex:idx_profile_user"`
	FullName         string         `json:"fullName" db:"full_name" gorm:"type:text;not null"`
	Headline         string         `json:"headline" db:"headline" gorm:"type:text;not null"`
	Bio              pq.StringArray `json:"bio" db:"bio" gorm:"type:text[];not null"`
	HomeImage        *string        `json:"homeImage,omitempty" db:"home_image" gorm:"type:text"`
	AboutImage       *string        `json:"aboutImage,omitempty" db:"about_image" gorm:"type:text"`
	Email            *string        `json:"email,omitempty" db:"email" gorm:"type:text"`
	Phone            *string        `json:"phone,omitempty" db:"phone" gorm:"type:text"`
	Location         *string        `json:"location,omitempty" db:"location" gorm:"type:text"`
	TechStack        pq.StringArray `json:"techStack" db:"tech_stack" gorm:"type:text[]"`
	Skills           pq.StringArray `json:"skills" db:"skills" gorm:"type:text[]"`
	Socials          Socials        `json:"socials" gorm:"embedded"`
	AvailableForWork bool           `json:"availableForWork" db:"available_for_work" gorm:"not null;default:false"`
	CreatedAt        time.Time      `json:"createdAt" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt        time.Time      `json:"updatedAt" db:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
