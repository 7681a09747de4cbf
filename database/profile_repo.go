package database

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/avelara/portfolio-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// Find returns the singleton profile, or nil when it has not been created.
func (r *ProfileRepo) Find() (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", models.ProfileID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Upsert creates or fully replaces the singleton row. The fixed primary key
// plus ON CONFLICT makes concurrent writers converge on one record.
func (r *ProfileRepo) Upsert(profile *models.Profile) error {
	profile.ID = models.ProfileID
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(profile).Error
}

// Save updates the existing profile row in place.
func (r *ProfileRepo) Save(profile *models.Profile) error {
	return r.db.Save(profile).Error
}
