package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelara/portfolio-backend/database"
	"github.com/avelara/portfolio-backend/errs"
	"github.com/avelara/portfolio-backend/models"
)

type fakeProjectStore struct {
	projects []*models.Project
}

func (f *fakeProjectStore) FindAll(filter database.ProjectFilter) ([]*models.Project, error) {
	var out []*models.Project
	for _, p := range f.projects {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStore) FindBySlug(slug string) (*models.Project, error) {
	for _, p := range f.projects {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStore) SlugExists(slug string) (bool, error) {
	p, _ := f.FindBySlug(slug)
	return p != nil, nil
}

func (f *fakeProjectStore) Add(project *models.Project) error {
	if taken, _ := f.SlugExists(project.Slug); taken {
		return errors.New(`duplicate key value violates unique constraint "idx_projects_slug"`)
	}
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	f.projects = append(f.projects, project)
	return nil
}

func (f *fakeProjectStore) Save(project *models.Project) error {
	for i, p := range f.projects {
		if p.ID == project.ID {
			f.projects[i] = project
			return nil
		}
	}
	return errors.New("record not found")
}

func (f *fakeProjectStore) Delete(id uuid.UUID) error {
	for i, p := range f.projects {
		if p.ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeTechStore struct {
	tech []*models.Tech
}

func (f *fakeTechStore) FindAll() ([]*models.Tech, error) {
	return f.tech, nil
}

func (f *fakeTechStore) FindByIDs(ids []uuid.UUID) ([]*models.Tech, error) {
	var out []*models.Tech
	for _, t := range f.tech {
		for _, id := range ids {
			if t.ID == id {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeTechStore) SlugExists(slug string) (bool, error) {
	for _, t := range f.tech {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTechStore) Add(tech *models.Tech) error {
	if tech.ID == uuid.Nil {
		tech.ID = uuid.New()
	}
	f.tech = append(f.tech, tech)
	return nil
}

func apiStatus(t *testing.T, err error) int {
	t.Helper()
	var apiErr *errs.ApiErr
	require.ErrorAs(t, err, &apiErr)
	return apiErr.StatusCode
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func newTestProjectService() (*ProjectService, *fakeProjectStore, *fakeTechStore) {
	projects := &fakeProjectStore{}
	tech := &fakeTechStore{}
	return NewProjectService(projects, tech), projects, tech
}

func TestProjectCreate_AllocatesSlugFromTitle(t *testing.T) {
	svc, _, _ := newTestProjectService()

	first, err := svc.Create(ProjectInput{Title: strPtr("My Cool App!!"), Summary: strPtr("an app")})
	require.NoError(t, err)
	assert.Equal(t, "my-cool-app", first.Slug)

	second, err := svc.Create(ProjectInput{Title: strPtr("My Cool App"), Summary: strPtr("another app")})
	require.NoError(t, err)
	assert.Equal(t, "my-cool-app-1", second.Slug)
}

func TestProjectCreate_ExplicitSlugWins(t *testing.T) {
	svc, _, _ := newTestProjectService()

	view, err := svc.Create(ProjectInput{
		Title:   strPtr("Whatever"),
		Summary: strPtr("s"),
		Slug:    strPtr("  Custom-Slug "),
	})
	require.NoError(t, err)
	assert.Equal(t, "custom-slug", view.Slug)
}

func TestProjectCreate_ExplicitDuplicateSlugConflicts(t *testing.T) {
	svc, _, _ := newTestProjectService()

	_, err := svc.Create(ProjectInput{Title: strPtr("One"), Summary: strPtr("s"), Slug: strPtr("taken")})
	require.NoError(t, err)

	_, err = svc.Create(ProjectInput{Title: strPtr("Two"), Summary: strPtr("s"), Slug: strPtr("taken")})
	require.Error(t, err)
	assert.Equal(t, 409, apiStatus(t, err))
}

func TestProjectCreate_RequiresTitleAndSummary(t *testing.T) {
	svc, _, _ := newTestProjectService()

	_, err := svc.Create(ProjectInput{Summary: strPtr("s")})
	assert.Equal(t, 400, apiStatus(t, err))

	_, err = svc.Create(ProjectInput{Title: strPtr("t")})
	assert.Equal(t, 400, apiStatus(t, err))
}

func TestProjectCreate_Defaults(t *testing.T) {
	svc, _, _ := newTestProjectService()

	view, err := svc.Create(ProjectInput{
		Title:     strPtr("App"),
		Summary:   strPtr("s"),
		ExtraTech: []string{" Go ", "Go", "", "Redis"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPublished, view.Status)
	assert.Equal(t, []string{"Go", "Redis"}, []string(view.ExtraTech))
	assert.NotNil(t, view.Description)
	assert.NotNil(t, view.Tags)
}

func TestProjectList_DefaultsToPublished(t *testing.T) {
	svc, _, _ := newTestProjectService()

	_, err := svc.Create(ProjectInput{Title: strPtr("Live"), Summary: strPtr("s")})
	require.NoError(t, err)
	_, err = svc.Create(ProjectInput{Title: strPtr("WIP"), Summary: strPtr("s"), Status: strPtr(models.StatusDraft)})
	require.NoError(t, err)

	published, err := svc.List("", nil)
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "live", published[0].Slug)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProjectList_FeaturedFilter(t *testing.T) {
	svc, _, _ := newTestProjectService()

	_, err := svc.Create(ProjectInput{Title: strPtr("Plain"), Summary: strPtr("s")})
	require.NoError(t, err)
	_, err = svc.Create(ProjectInput{Title: strPtr("Star"), Summary: strPtr("s"), Featured: boolPtr(true)})
	require.NoError(t, err)

	featured, err := svc.List("", boolPtr(true))
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "star", featured[0].Slug)
}

func TestProjectGetBySlug_NotFound(t *testing.T) {
	svc, _, _ := newTestProjectService()

	_, err := svc.GetBySlug("nope")
	assert.Equal(t, 404, apiStatus(t, err))
}

func TestProjectPatch_MergesAdditiveArrays(t *testing.T) {
	svc, _, _ := newTestProjectService()

	created, err := svc.Create(ProjectInput{
		Title:     strPtr("App"),
		Summary:   strPtr("s"),
		ExtraTech: []string{"React", "Node"},
		Gallery:   []string{"https://a.example/1.png"},
	})
	require.NoError(t, err)

	patched, err := svc.Patch(created.ID, ProjectInput{
		ExtraTech: []string{"node", "Go"},
		Gallery:   []string{"https://a.example/1.png", "https://a.example/2.png"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"React", "Node", "node", "Go"}, []string(patched.ExtraTech))
	assert.Equal(t, []string{"https://a.example/1.png", "https://a.example/2.png"}, []string(patched.Gallery))
}

func TestProjectPatch_ReplacesTagsAndDescription(t *testing.T) {
	svc, _, _ := newTestProjectService()

	created, err := svc.Create(ProjectInput{
		Title:       strPtr("App"),
		Summary:     strPtr("s"),
		Tags:        []string{"old"},
		Description: []string{"first paragraph"},
	})
	require.NoError(t, err)

	patched, err := svc.Patch(created.ID, ProjectInput{
		Tags:        []string{"new"},
		Description: []string{"rewritten"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, []string(patched.Tags))
	assert.Equal(t, []string{"rewritten"}, []string(patched.Description))
}

func TestProjectPatch_AbsentFieldsUntouched(t *testing.T) {
	svc, _, _ := newTestProjectService()

	created, err := svc.Create(ProjectInput{
		Title:     strPtr("App"),
		Summary:   strPtr("original"),
		ExtraTech: []string{"Go"},
	})
	require.NoError(t, err)

	patched, err := svc.Patch(created.ID, ProjectInput{Title: strPtr("Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", patched.Title)
	assert.Equal(t, "original", patched.Summary)
	assert.Equal(t, []string{"Go"}, []string(patched.ExtraTech))
	// Empty is not absent: an explicit empty list still merges as a no-op.
	assert.Equal(t, "app", patched.Slug)
}

func TestProjectReplace_NormalizesWithoutMerging(t *testing.T) {
	svc, _, _ := newTestProjectService()

	created, err := svc.Create(ProjectInput{
		Title:     strPtr("App"),
		Summary:   strPtr("s"),
		ExtraTech: []string{"React", "Node"},
	})
	require.NoError(t, err)

	replaced, err := svc.Replace(created.ID, ProjectInput{
		ExtraTech: []string{" Go ", "Go"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, []string(replaced.ExtraTech))
}

func TestProjectUpdate_NotFound(t *testing.T) {
	svc, _, _ := newTestProjectService()

	_, err := svc.Patch(uuid.New(), ProjectInput{Title: strPtr("x")})
	assert.Equal(t, 404, apiStatus(t, err))
}

func TestProjectDelete(t *testing.T) {
	svc, store, _ := newTestProjectService()

	created, err := svc.Create(ProjectInput{Title: strPtr("App"), Summary: strPtr("s")})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))
	assert.Empty(t, store.projects)

	err = svc.Delete(created.ID)
	assert.Equal(t, 404, apiStatus(t, err))
}

func TestProjectTechExpansion(t *testing.T) {
	svc, _, techStore := newTestProjectService()

	goTech := &models.Tech{ID: uuid.New(), Name: "Go", Slug: "go", Category: models.CategoryLanguage}
	require.NoError(t, techStore.Add(goTech))

	dangling := uuid.New().String()
	view, err := svc.Create(ProjectInput{
		Title:   strPtr("App"),
		Summary: strPtr("s"),
		Tech:    []string{goTech.ID.String(), dangling},
	})
	require.NoError(t, err)

	require.Len(t, view.Tech, 1)
	assert.Equal(t, "Go", view.Tech[0].Name)
	assert.Equal(t, "go", view.Tech[0].Slug)
	// Stored ids keep the dangling reference even though the view omits it.
	assert.Len(t, []string(view.TechIDs), 2)
}

func TestProjectPatch_TechReplacesReferences(t *testing.T) {
	svc, _, techStore := newTestProjectService()

	first := &models.Tech{ID: uuid.New(), Name: "Go", Slug: "go", Category: models.CategoryLanguage}
	second := &models.Tech{ID: uuid.New(), Name: "Redis", Slug: "redis", Category: models.CategoryDatabase}
	require.NoError(t, techStore.Add(first))
	require.NoError(t, techStore.Add(second))

	created, err := svc.Create(ProjectInput{
		Title:   strPtr("App"),
		Summary: strPtr("s"),
		Tech:    []string{first.ID.String()},
	})
	require.NoError(t, err)

	patched, err := svc.Patch(created.ID, ProjectInput{Tech: []string{second.ID.String()}})
	require.NoError(t, err)
	require.Len(t, patched.Tech, 1)
	assert.Equal(t, "Redis", patched.Tech[0].Name)
}
