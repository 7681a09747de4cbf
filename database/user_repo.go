package database

import (
	"errors"

	"gorm.io/gorm"

	"github.com/avelara/portfolio-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByUsername returns a user by username, or nil when no row matches.
func (r *UserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Add inserts a new user into the database
func (r *UserRepo) Add(user *models.User) error {
	return r.db.Create(user).Error
}

// Save updates an existing user in the database
func (r *UserRepo) Save(user *models.User) error {
	return r.db.Save(user).Error
}
