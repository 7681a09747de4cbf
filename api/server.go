package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/avelara/portfolio-backend/config"
	"github.com/avelara/portfolio-backend/database"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(cfg *config.Config, db database.Database, rdb *redis.Client) (Server, error) {
	address := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	startupTime := time.Now()

	router := newRouter(cfg, db, rdb, withStartupTime(startupTime))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

type router struct {
	startupTime time.Time
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(cfg *config.Config, db database.Database, rdb *redis.Client, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(chimiddleware.RealIP)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(HTTPLoggingMiddleware)

	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AcceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	handlers := initializeHandlers(cfg, db)
	authMiddleware := newAuthMiddleware(cfg.JWTSecret)
	limits := newRateLimiters(rdb, cfg)

	setupRoutes(chiRouter, handlers, authMiddleware, limits, router.startupTime)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
