package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelara/portfolio-backend/config"
	"github.com/avelara/portfolio-backend/services"
)

const sessionCookieName = "token"

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	authService *services.AuthService
	cfg         *config.Config
}

func newAuthHandler(authService *services.AuthService, cfg *config.Config) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		authService: authService,
		cfg:         cfg,
	}
}

type signupRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Password    string `json:"password" validate:"required,min=8,max=128"`
	ResetSecret string `json:"resetSecret" validate:"omitempty,min=8,max=128"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updatePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	ResetSecret string `json:"resetSecret" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=128"`
}

type updateUsernameRequest struct {
	Username    string `json:"username" validate:"required"`
	ResetSecret string `json:"resetSecret" validate:"required"`
	NewUsername string `json:"newUsername" validate:"required,min=3,max=50"`
}

func (h authHandler) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signupRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.authService.Signup(req.Username, req.Password, req.ResetSecret)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"user":   user,
		})
	}
}

func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, token, err := h.authService.Login(req.Username, req.Password)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		http.SetCookie(w, h.sessionCookie(token, int(h.cfg.JWTExpiry.Seconds())))
		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"user":   user,
		})
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, h.sessionCookie("", -1))
		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"message": "logged out",
		})
	}
}

func (h authHandler) updatePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePasswordRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.authService.UpdatePassword(req.Username, req.ResetSecret, req.NewPassword); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status":  "success",
			"message": "password updated",
		})
	}
}

func (h authHandler) updateUsername() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateUsernameRequest
		if err := decodeBody(r, &req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.authService.UpdateUsername(req.Username, req.ResetSecret, req.NewUsername)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"user":   user,
		})
	}
}

// sessionCookie builds the auth cookie; maxAge <= 0 clears it. The cookie
// is HttpOnly so scripts never see the token.
func (h authHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: http.SameSiteStrictMode,
	}
}
