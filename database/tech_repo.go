package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avelara/portfolio-backend/models"
)

type TechRepo struct {
	db *gorm.DB
}

func NewTechRepo(db *gorm.DB) *TechRepo {
	return &TechRepo{db}
}

// FindAll returns all tech records ordered by name.
func (r *TechRepo) FindAll() ([]*models.Tech, error) {
	var tech []*models.Tech
	err := r.db.Order("name ASC").Find(&tech).Error
	return tech, err
}

// FindByIDs returns the tech records for the given ids. Ids with no matching
// row are simply absent from the result; the caller decides how to treat
// dangling references.
func (r *TechRepo) FindByIDs(ids []uuid.UUID) ([]*models.Tech, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tech []*models.Tech
	err := r.db.Where("id IN ?", ids).Find(&tech).Error
	return tech, err
}

// SlugExists is the point existence query used by slug allocation.
func (r *TechRepo) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Tech{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// Add inserts a new tech record into the database
func (r *TechRepo) Add(tech *models.Tech) error {
	return r.db.Create(tech).Error
}
