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

// ProjectInput carries a full or partial project document. Pointer and nil
// slice fields distinguish "absent" from "set to empty"; absence leaves the
// stored value untouched on PATCH.
type ProjectInput struct {
	Title       *string  `json:"title" validate:"omitempty,max=140"`
	Slug        *string  `json:"slug" validate:"omitempty,max=140"`
	Summary     *string  `json:"summary" validate:"omitempty,max=300"`
	Description []string `json:"description"`
	ContentHTML *string  `json:"contentHtml"`
	Tech        []string `json:"tech" validate:"omitempty,dive,uuid"`
	ExtraTech   []string `json:"extraTech"`
	Tags        []string `json:"tags"`
	Image       *string  `json:"image" validate:"omitempty,url"`
	Gallery     []string `json:"gallery" validate:"omitempty,dive,url"`
	RepoURL     *string  `json:"repoUrl" validate:"omitempty,url"`
	LiveURL     *string  `json:"liveUrl" validate:"omitempty,url"`
	Featured    *bool    `json:"featured"`
	SortOrder   *int     `json:"sortOrder"`
	Status      *string  `json:"status" validate:"omitempty,oneof=draft published"`
}

// Sanitize strips executable markup from every string leaf. Called at the
// transport boundary before the service sees the input.
func (in *ProjectInput) Sanitize() {
	in.Title = sanitize.StrictPtr(in.Title)
	in.Slug = sanitize.StrictPtr(in.Slug)
	in.Summary = sanitize.StrictPtr(in.Summary)
	in.Description = sanitize.Strings(in.Description)
	in.ContentHTML = sanitize.RichPtr(in.ContentHTML)
	in.Tech = sanitize.Strings(in.Tech)
	in.ExtraTech = sanitize.Strings(in.ExtraTech)
	in.Tags = sanitize.Strings(in.Tags)
	in.Image = sanitize.StrictPtr(in.Image)
	in.Gallery = sanitize.Strings(in.Gallery)
	in.RepoURL = sanitize.StrictPtr(in.RepoURL)
	in.LiveURL = sanitize.StrictPtr(in.LiveURL)
}

// TechRef is the expanded display shape of a tech reference.
type TechRef struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Icon     *string   `json:"icon,omitempty"`
	Color    *string   `json:"color,omitempty"`
	Category string    `json:"category"`
}

// ProjectView is a project with its tech references expanded. Dangling
// references are omitted, not errors.
type ProjectView struct {
	models.Project
	Tech []TechRef `json:"tech"`
}

type ProjectService struct {
	logger   zerolog.Logger
	projects database.ProjectStore
	tech     database.TechStore
}

func NewProjectService(projects database.ProjectStore, tech database.TechStore) *ProjectService {
	logger := log.With().Str("serviceName", "projectService").Logger()

	return &ProjectService{
		logger:   logger,
		projects: projects,
		tech:     tech,
	}
}

// Create persists a new project. When no explicit slug is supplied, one is
// allocated from the title; explicit slugs skip allocation but still hit the
// store's unique constraint.
func (s *ProjectService) Create(input ProjectInput) (*ProjectView, error) {
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}
	if input.Summary == nil || strings.TrimSpace(*input.Summary) == "" {
		return nil, errs.NewMissingRequiredFieldError("summary")
	}

	project := &models.Project{
		Title:       strings.TrimSpace(*input.Title),
		Summary:     *input.Summary,
		Description: orEmpty(input.Description),
		ContentHTML: input.ContentHTML,
		TechIDs:     UniqueStrings(input.Tech),
		ExtraTech:   UniqueStrings(input.ExtraTech),
		Tags:        orEmpty(input.Tags),
		Image:       input.Image,
		Gallery:     UniqueStrings(input.Gallery),
		RepoURL:     input.RepoURL,
		LiveURL:     input.LiveURL,
		Status:      models.StatusPublished,
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.SortOrder != nil {
		project.SortOrder = *input.SortOrder
	}
	if input.Status != nil && *input.Status != "" {
		project.Status = *input.Status
	}

	if input.Slug != nil && *input.Slug != "" {
		project.Slug = strings.ToLower(strings.TrimSpace(*input.Slug))
	} else {
		slug, err := AllocateSlug(Slugify(project.Title), s.projects.SlugExists)
		if err != nil {
			return nil, errs.NewDatabaseError("allocate slug for", "project", err)
		}
		project.Slug = slug
	}

	if err := s.projects.Add(project); err != nil {
		return nil, errs.NewDatabaseError("create", "project", err)
	}

	s.logger.Info().Str("slug", project.Slug).Msg("project created")
	return s.expandOne(project)
}

// List returns projects for public consumption. An empty status defaults to
// published.
func (s *ProjectService) List(status string, featured *bool) ([]*ProjectView, error) {
	if status == "" {
		status = models.StatusPublished
	}
	projects, err := s.projects.FindAll(database.ProjectFilter{Status: status, Featured: featured})
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return s.expand(projects)
}

// ListAll returns every project regardless of status, for privileged callers.
func (s *ProjectService) ListAll() ([]*ProjectView, error) {
	projects, err := s.projects.FindAll(database.ProjectFilter{})
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return s.expand(projects)
}

// GetBySlug is a point lookup; a missing slug is a reported error.
func (s *ProjectService) GetBySlug(slug string) (*ProjectView, error) {
	project, err := s.projects.FindBySlug(slug)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewNotFoundError("project not found")
	}
	return s.expandOne(project)
}

// Replace applies full-update semantics: every present field overwrites the
// stored value, and array fields are normalized without merging.
func (s *ProjectService) Replace(id uuid.UUID, input ProjectInput) (*ProjectView, error) {
	return s.update(id, input, false)
}

// Patch applies partial-update semantics: scalars and the tech reference
// list overwrite when present, while extraTech and gallery merge additively.
func (s *ProjectService) Patch(id uuid.UUID, input ProjectInput) (*ProjectView, error) {
	return s.update(id, input, true)
}

func (s *ProjectService) update(id uuid.UUID, input ProjectInput, merge bool) (*ProjectView, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return nil, errs.NewNotFoundError("project not found")
	}

	applyProjectInput(project, input, merge)

	if err := s.projects.Save(project); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}
	return s.expandOne(project)
}

// Delete hard-deletes a project; a missing id is a reported error.
func (s *ProjectService) Delete(id uuid.UUID) error {
	project, err := s.projects.FindByID(id)
	if err != nil {
		return errs.NewDatabaseError("find", "project", err)
	}
	if project == nil {
		return errs.NewNotFoundError("project not found")
	}
	if err := s.projects.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}
	s.logger.Info().Str("slug", project.Slug).Msg("project deleted")
	return nil
}

func applyProjectInput(project *models.Project, input ProjectInput, merge bool) {
	if input.Title != nil {
		project.Title = strings.TrimSpace(*input.Title)
	}
	if input.Slug != nil && *input.Slug != "" {
		project.Slug = strings.ToLower(strings.TrimSpace(*input.Slug))
	}
	if input.Summary != nil {
		project.Summary = *input.Summary
	}
	if input.Description != nil {
		project.Description = input.Description
	}
	if input.ContentHTML != nil {
		project.ContentHTML = input.ContentHTML
	}
	if input.Tech != nil {
		// Reference list: always replace, never merge.
		project.TechIDs = UniqueStrings(input.Tech)
	}
	if input.ExtraTech != nil {
		if merge {
			project.ExtraTech = MergeStrings(project.ExtraTech, input.ExtraTech)
		} else {
			project.ExtraTech = UniqueStrings(input.ExtraTech)
		}
	}
	if input.Tags != nil {
		project.Tags = input.Tags
	}
	if input.Image != nil {
		project.Image = input.Image
	}
	if input.Gallery != nil {
		if merge {
			project.Gallery = MergeStrings(project.Gallery, input.Gallery)
		} else {
			project.Gallery = UniqueStrings(input.Gallery)
		}
	}
	if input.RepoURL != nil {
		project.RepoURL = input.RepoURL
	}
	if input.LiveURL != nil {
		project.LiveURL = input.LiveURL
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}
	if input.SortOrder != nil {
		project.SortOrder = *input.SortOrder
	}
	if input.Status != nil && *input.Status != "" {
		project.Status = *input.Status
	}
}

func (s *ProjectService) expandOne(project *models.Project) (*ProjectView, error) {
	views, err := s.expand([]*models.Project{project})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// expand resolves tech references into display attributes with a single
// batched lookup. Malformed or dangling ids are dropped from the result.
func (s *ProjectService) expand(projects []*models.Project) ([]*ProjectView, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, p := range projects {
		for _, raw := range p.TechIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	techs, err := s.tech.FindByIDs(ids)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "tech", err)
	}
	index := make(map[string]*models.Tech, len(techs))
	for _, t := range techs {
		index[t.ID.String()] = t
	}

	views := make([]*ProjectView, 0, len(projects))
	for _, p := range projects {
		refs := make([]TechRef, 0, len(p.TechIDs))
		for _, raw := range p.TechIDs {
			t, ok := index[raw]
			if !ok {
				continue
			}
			refs = append(refs, TechRef{
				ID:       t.ID,
				Name:     t.Name,
				Slug:     t.Slug,
				Icon:     t.Icon,
				Color:    t.Color,
				Category: t.Category,
			})
		}
		views = append(views, &ProjectView{Project: *p, Tech: refs})
	}
	return views, nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
