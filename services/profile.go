package services

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelara/portfolio-backend/database"
	"github.com/avelara/portfolio-backend/errs"
	"github.com/avelara/portfolio-backend/models"
	"github.com/avelara/portfolio-backend/sanitize"
)

// SocialsInput is the fixed-shape socials payload. Each present key
// overwrites the corresponding stored field; absent keys keep their value.
type SocialsInput struct {
	GitHub    *string `json:"github" validate:"omitempty,url"`
	LinkedIn  *string `json:"linkedin" validate:"omitempty,url"`
	Twitter   *string `json:"twitter" validate:"omitempty,url"`
	Website   *string `json:"website" validate:"omitempty,url"`
	YouTube   *string `json:"youtube" validate:"omitempty,url"`
	Instagram *string `json:"instagram" validate:"omitempty,url"`
}

// ProfileInput carries a full or partial profile document.
type ProfileInput struct {
	FullName         *string       `json:"fullName" validate:"omitempty,max=100"`
	Headline         *string       `json:"headline" validate:"omitempty,max=140"`
	Bio              []string      `json:"bio"`
	HomeImage        *string       `json:"homeImage" validate:"omitempty,url"`
	AboutImage       *string       `json:"aboutImage" validate:"omitempty,url"`
	Email            *string       `json:"email" validate:"omitempty,email"`
	Phone            *string       `json:"phone" validate:"omitempty,phone"`
	Location         *string       `json:"location"`
	TechStack        []string      `json:"techStack"`
	Skills           []string      `json:"skills"`
	Socials          *SocialsInput `json:"socials"`
	AvailableForWork *bool         `json:"availableForWork"`
}

func (in *ProfileInput) Sanitize() {
	in.FullName = sanitize.StrictPtr(in.FullName)
	in.Headline = sanitize.StrictPtr(in.Headline)
	in.Bio = sanitize.Strings(in.Bio)
	in.HomeImage = sanitize.StrictPtr(in.HomeImage)
	in.AboutImage = sanitize.StrictPtr(in.AboutImage)
	in.Email = sanitize.StrictPtr(in.Email)
	in.Phone = sanitize.StrictPtr(in.Phone)
	in.Location = sanitize.StrictPtr(in.Location)
	in.TechStack = sanitize.Strings(in.TechStack)
	in.Skills = sanitize.Strings(in.Skills)
	if in.Socials != nil {
		in.Socials.GitHub = sanitize.StrictPtr(in.Socials.GitHub)
		in.Socials.LinkedIn = sanitize.StrictPtr(in.Socials.LinkedIn)
		in.Socials.Twitter = sanitize.StrictPtr(in.Socials.Twitter)
		in.Socials.Website = sanitize.StrictPtr(in.Socials.Website)
		in.Socials.YouTube = sanitize.StrictPtr(in.Socials.YouTube)
		in.Socials.Instagram = sanitize.StrictPtr(in.Socials.Instagram)
	}
}

type ProfileService struct {
	logger   zerolog.Logger
	profiles database.ProfileStore
}

func NewProfileService(profiles database.ProfileStore) *ProfileService {
	logger := log.With().Str("serviceName", "profileService").Logger()

	return &ProfileService{
		logger:   logger,
		profiles: profiles,
	}
}

// Get returns the singleton profile; absence is a reported error.
func (s *ProfileService) Get() (*models.Profile, error) {
	profile, err := s.profiles.Find()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}
	if profile == nil {
		return nil, errs.NewNotFoundError("profile not found")
	}
	return profile, nil
}

// Upsert creates or fully replaces the singleton profile. When the caller is
// authenticated the profile is linked to that user.
func (s *ProfileService) Upsert(input ProfileInput, userID *uuid.UUID) (*models.Profile, error) {
	if input.FullName == nil || strings.TrimSpace(*input.FullName) == "" {
		return nil, errs.NewMissingRequiredFieldError("fullName")
	}
	if input.Headline == nil || strings.TrimSpace(*input.Headline) == "" {
		return nil, errs.NewMissingRequiredFieldError("headline")
	}
	if len(UniqueStrings(input.Bio)) == 0 {
		return nil, errs.NewInvalidFieldError("bio", "must include at least one paragraph")
	}

	profile := &models.Profile{
		ID:         models.ProfileID,
		UserID:     userID,
		FullName:   strings.TrimSpace(*input.FullName),
		Headline:   strings.TrimSpace(*input.Headline),
		Bio:        input.Bio,
		HomeImage:  input.HomeImage,
		AboutImage: input.AboutImage,
		Email:      input.Email,
		Phone:      input.Phone,
		Location:   input.Location,
		TechStack:  UniqueStrings(input.TechStack),
		Skills:     UniqueStrings(input.Skills),
	}
	if input.Socials != nil {
		applySocials(&profile.Socials, input.Socials)
	}
	if input.AvailableForWork != nil {
		profile.AvailableForWork = *input.AvailableForWork
	}

	if err := s.profiles.Upsert(profile); err != nil {
		return nil, errs.NewDatabaseError("upsert", "profile", err)
	}

	s.logger.Info().Msg("profile saved")
	return profile, nil
}

// Patch partially updates the singleton profile: scalars and bio by
// presence, techStack and skills merged additively, socials merged per
// field. A missing profile is created from the input.
func (s *ProfileService) Patch(input ProfileInput, userID *uuid.UUID) (*models.Profile, error) {
	profile, err := s.profiles.Find()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "profile", err)
	}
	if profile == nil {
		return s.Upsert(input, userID)
	}

	if input.FullName != nil {
		profile.FullName = strings.TrimSpace(*input.FullName)
	}
	if input.Headline != nil {
		profile.Headline = strings.TrimSpace(*input.Headline)
	}
	if input.Bio != nil {
		// Ordered narrative content: full replace, never merged.
		profile.Bio = input.Bio
	}
	if input.HomeImage != nil {
		profile.HomeImage = input.HomeImage
	}
	if input.AboutImage != nil {
		profile.AboutImage = input.AboutImage
	}
	if input.Email != nil {
		profile.Email = input.Email
	}
	if input.Phone != nil {
		profile.Phone = input.Phone
	}
	if input.Location != nil {
		profile.Location = input.Location
	}
	if input.TechStack != nil {
		profile.TechStack = MergeStrings(profile.TechStack, input.TechStack)
	}
	if input.Skills != nil {
		profile.Skills = MergeStrings(profile.Skills, input.Skills)
	}
	if input.Socials != nil {
		applySocials(&profile.Socials, input.Socials)
	}
	if input.AvailableForWork != nil {
		profile.AvailableForWork = *input.AvailableForWork
	}

	if err := s.profiles.Save(profile); err != nil {
		return nil, errs.NewDatabaseError("update", "profile", err)
	}

	s.logger.Info().Msg("profile updated")
	return profile, nil
}

func applySocials(socials *models.Socials, input *SocialsInput) {
	if input.GitHub != nil {
		socials.GitHub = input.GitHub
	}
	if input.LinkedIn != nil {
		socials.LinkedIn = input.LinkedIn
	}
	if input.Twitter != nil {
		socials.Twitter = input.Twitter
	}
	if input.Website != nil {
		socials.Website = input.Website
	}
	if input.YouTube != nil {
		socials.YouTube = input.YouTube
	}
	if input.Instagram != nil {
		socials.Instagram = input.Instagram
	}
}
