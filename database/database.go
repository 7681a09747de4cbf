package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/avelara/portfolio-backend/models"
)

// ProjectFilter narrows project listings. An empty Status means no status
// condition; Featured is only applied when non-nil.
type ProjectFilter struct {
	Status   string
	Featured *bool
}

// ProjectStore is the persistence contract for projects. Slug uniqueness is
// enforced by the store itself; a concurrent duplicate insert fails with a
// conflict rather than overwriting.
type ProjectStore interface {
	FindAll(filter ProjectFilter) ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	FindBySlug(slug string) (*models.Project, error)
	SlugExists(slug string) (bool, error)
	Add(project *models.Project) error
	Save(project *models.Project) error
	Delete(id uuid.UUID) error
}

// TechStore is the persistence contract for tech reference records.
type TechStore interface {
	FindAll() ([]*models.Tech, error)
	FindByIDs(ids []uuid.UUID) ([]*models.Tech, error)
	SlugExists(slug string) (bool, error)
	Add(tech *models.Tech) error
}

// UserStore is the persistence contract for admin accounts.
type UserStore interface {
	FindByUsername(username string) (*models.User, error)
	Add(user *models.User) error
	Save(user *models.User) error
}

// ProfileStore is the persistence contract for the singleton profile.
type ProfileStore interface {
	Find() (*models.Profile, error)
	Upsert(profile *models.Profile) error
	Save(profile *models.Profile) error
}

type Database struct {
	projectRepo *ProjectRepo
	techRepo    *TechRepo
	userRepo    *UserRepo
	profileRepo *ProfileRepo
}

// New initializes a new Database struct with each repository using a shared
// GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		techRepo:    NewTechRepo(db),
		userRepo:    NewUserRepo(db),
		profileRepo: NewProfileRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) TechRepo() *TechRepo {
	return d.techRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}
