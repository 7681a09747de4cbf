package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelara/portfolio-backend/services"
)

type techHandler struct {
	responder   Responder
	logger      zerolog.Logger
	techService *services.TechService
}

func newTechHandler(techService *services.TechService) techHandler {
	logger := log.With().Str("handlerName", "techHandler").Logger()

	return techHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		techService: techService,
	}
}

func (h techHandler) listTech() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tech, err := h.techService.List()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"tech":  tech,
			"total": len(tech),
		})
	}
}

func (h techHandler) createTech() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input services.TechInput
		if err := decodeBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		input.Sanitize()

		tech, err := h.techService.Create(input)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, tech)
	}
}
