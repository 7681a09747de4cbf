package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelara/portfolio-backend/services"
)

type profileHandler struct {
	responder      Responder
	logger         zerolog.Logger
	profileService *services.ProfileService
}

func newProfileHandler(profileService *services.ProfileService) profileHandler {
	logger := log.With().Str("handlerName", "profileHandler").Logger()

	return profileHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		profileService: profileService,
	}
}

func (h profileHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := h.profileService.Get()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

func (h profileHandler) upsertProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.ProfileInput
		if err := decodeBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		input.Sanitize()

		profile, err := h.profileService.Upsert(input, callerID(r))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

func (h profileHandler) patchProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.ProfileInput
		if err := decodeBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		input.Sanitize()

		profile, err := h.profileService.Patch(input, callerID(r))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, profile)
	}
}

func callerID(r *http.Request) *uuid.UUID {
	claims := ctxGetClaims(r.Context())
	if claims == nil {
		return nil
	}
	return &claims.UserID
}
