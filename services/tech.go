package services

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelara/portfolio-backend/database"
	"github.com/avelara/portfolio-backend/errs"
	"github.com/avelara/portfolio-backend/models"
	"github.com/avelara/portfolio-backend/sanitize"
)

// TechInput carries a new tech reference record.
type TechInput struct {
	Name     *string `json:"name" validate:"omitempty,max=80"`
	Slug     *string `json:"slug" validate:"omitempty,max=140"`
	Category *string `json:"category" validate:"omitempty,oneof=frontend backend database devops tool language other"`
	Icon     *string `json:"icon"`
	Website  *string `json:"website" validate:"omitempty,url"`
	Color    *string `json:"color"`
}

func (in *TechInput) Sanitize() {
	in.Name = sanitize.StrictPtr(in.Name)
	in.Slug = sanitize.StrictPtr(in.Slug)
	in.Icon = sanitize.StrictPtr(in.Icon)
	in.Website = sanitize.StrictPtr(in.Website)
	in.Color = sanitize.StrictPtr(in.Color)
}

type TechService struct {
	logger zerolog.Logger
	tech   database.TechStore
}

func NewTechService(tech database.TechStore) *TechService {
	logger := log.With().Str("serviceName", "techService").Logger()

	return &TechService{
		logger: logger,
		tech:   tech,
	}
}

// List returns all tech reference records.
func (s *TechService) List() ([]*models.Tech, error) {
	tech, err := s.tech.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "tech", err)
	}
	return tech, nil
}

// Create inserts a tech record, allocating a slug from the name when none is
// supplied. Name and slug uniqueness are store-enforced.
func (s *TechService) Create(input TechInput) (*models.Tech, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, errs.NewMissingRequiredFieldError("name")
	}

	tech := &models.Tech{
		Name:     strings.TrimSpace(*input.Name),
		Category: models.CategoryOther,
		Icon:     input.Icon,
		Website:  input.Website,
		Color:    input.Color,
	}
	if input.Category != nil && *input.Category != "" {
		tech.Category = *input.Category
	}

	if input.Slug != nil && *input.Slug != "" {
		tech.Slug = strings.ToLower(strings.TrimSpace(*input.Slug))
	} else {
		slug, err := AllocateSlug(Slugify(tech.Name), s.tech.SlugExists)
		if err != nil {
			return nil, errs.NewDatabaseError("allocate slug for", "tech", err)
		}
		tech.Slug = slug
	}

	if err := s.tech.Add(tech); err != nil {
		return nil, errs.NewDatabaseError("create", "tech", err)
	}

	s.logger.Info().Str("slug", tech.Slug).Msg("tech created")
	return tech, nil
}
