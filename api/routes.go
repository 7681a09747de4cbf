package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public catalog, the auth flows and the
// authenticated admin surface.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware, limits *rateLimiters, startupTime time.Time) {
	r.Get("/health", healthHandler(startupTime))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(limits.auth.limit)

			r.Post("/signup", handlers.authHandler.signup())
			r.Post("/login", handlers.authHandler.login())
			r.Post("/logout", handlers.authHandler.logout())
			r.Put("/password", handlers.authHandler.updatePassword())
			r.Put("/username", handlers.authHandler.updateUsername())
		})

		r.Route("/projects", func(r chi.Router) {
			// Public catalog
			r.Get("/", handlers.projectHandler.listProjects())
			r.Get("/tech", handlers.techHandler.listTech())
			r.Get("/{slug}", handlers.projectHandler.getProjectBySlug())

			// Admin surface
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.authenticate)
				r.Use(limits.write.limit)

				r.Get("/admin/all", handlers.projectHandler.listAllProjects())
				r.Post("/", handlers.projectHandler.createProject())
				r.Put("/{projectID}", handlers.projectHandler.replaceProject())
				r.Patch("/{projectID}", handlers.projectHandler.patchProject())
				r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
			})
		})

		r.Route("/tech", func(r chi.Router) {
			r.Use(authMiddleware.authenticate)
			r.Use(limits.write.limit)

			r.Post("/", handlers.techHandler.createTech())
		})

		r.Route("/user-details", func(r chi.Router) {
			r.Get("/", handlers.profileHandler.getProfile())

			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.authenticate)
				r.Use(limits.write.limit)

				r.Put("/", handlers.profileHandler.upsertProfile())
				r.Patch("/", handlers.profileHandler.patchProfile())
			})
		})
	})
}

func healthHandler(startupTime time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"status": "ok",
			"uptime": time.Since(startupTime).String(),
		})
	}
}
