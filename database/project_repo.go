package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avelara/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects matching the filter, ordered by manual sort order
// ascending with newest-first as tiebreak.
func (r *ProjectRepo) FindAll(filter ProjectFilter) ([]*models.Project, error) {
	query := r.db.Order("sort_order ASC, created_at DESC")
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Featured != nil {
		query = query.Where("featured = ?", *filter.Featured)
	}

	var projects []*models.Project
	err := query.Find(&projects).Error
	return projects, err
}

// FindByID returns a project by its ID, or nil when no row matches.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// FindBySlug returns a project by its slug, or nil when no row matches.
func (r *ProjectRepo) FindBySlug(slug string) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// SlugExists is the point existence query used by slug allocation.
func (r *ProjectRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	return r.db.Create(project).Error
}

// Save updates an existing project in the database
func (r *ProjectRepo) Save(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project from the database by id
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Project{}, "id = ?", id).Error
}
