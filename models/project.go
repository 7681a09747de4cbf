package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Project statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Project represents a portfolio project with its catalog metadata.
// TechIDs holds references into the tech table; they are expanded at read
// time by the project service, never joined by the store.
type Project struct {
	ID          uuid.UUID      `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string         `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string         `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex:idx_project_slug"`
	Summary     string         `json:"summary" db:"summary" gorm:"type:text;not null"`
	Description pq.StringArray `json:"description" db:"description" gorm:"type:text[]"`
	ContentHTML *string        `json:"contentHtml,omitempty" db:"content_html" gorm:"type:text"`
	TechIDs     pq.StringArray `json:"-" db:"tech_ids" gorm:"type:text[];column:tech_ids"`
	ExtraTech   pq.StringArray `json:"extraTech" db:"extra_tech" gorm:"type:text[]"`
	Tags        pq.StringArray `json:"tags" db:"tags" gorm:"type:text[]"`
	Image       *string        `json:"image,omitempty" db:"image" gorm:"type:text"`
	Gallery     pq.StringArray `json:"gallery" db:"gallery" gorm:"type:text[]"`
	RepoURL     *string        `json:"repoUrl,omitempty" db:"repo_url" gorm:"type:text"`
	LiveURL     *string        `json:"liveUrl,omitempty" db:"live_url" gorm:"type:text"`
	Featured    bool           `json:"featured" db:"featured" gorm:"not null;default:false"`
	SortOrder   int            `json:"sortOrder" db:"sort_order" gorm:"not null;default:0"`
	Status      string         `json:"status" db:"status" gorm:"type:text;not null;default:published"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}
