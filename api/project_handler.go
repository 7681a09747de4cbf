package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelara/portfolio-backend/errs"
	"github.com/avelara/portfolio-backend/services"
)

type projectHandler struct {
	responder      Responder
	logger         zerolog.Logger
	projectService *services.ProjectService
}

func newProjectHandler(projectService *services.ProjectService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		projectService: projectService,
	}
}

// listProjects returns the public catalog: published projects unless a
// status filter says otherwise, optionally narrowed to featured ones.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")

		var featured *bool
		if raw := r.URL.Query().Get("featured"); raw != "" {
			value, err := strconv.ParseBool(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewInvalidFieldError("featured", "must be true or false"))
				return
			}
			featured = &value
		}

		projects, err := h.projectService.List(status, featured)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"projects": projects,
			"total":    len(projects),
		})
	}
}

// listAllProjects returns every project including drafts.
func (h projectHandler) listAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectService.ListAll()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"projects": projects,
			"total":    len(projects),
		})
	}
}

func (h projectHandler) getProjectBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if slug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing slug"))
			return
		}

		project, err := h.projectService.GetBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.ProjectInput
		if err := decodeBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		input.Sanitize()

		project, err := h.projectService.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) replaceProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input services.ProjectInput
		if err := decodeBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		input.Sanitize()

		project, err := h.projectService.Replace(projectID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) patchProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var input services.ProjectInput
		if err := decodeBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		input.Sanitize()

		project, err := h.projectService.Patch(projectID, input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseProjectID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectService.Delete(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

func parseProjectID(r *http.Request) (uuid.UUID, error) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing projectID")
	}
	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid projectID")
	}
	return projectID, nil
}
