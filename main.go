package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/avelara/portfolio-backend/api"
	"github.com/avelara/portfolio-backend/config"
	"github.com/avelara/portfolio-backend/database"
	"github.com/avelara/portfolio-backend/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	if !cfg.IsProduction() {
		zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !cfg.IsProduction(),
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error connecting to database")
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"pgcrypto\"").Error; err != nil {
		zlog.Fatal().Err(err).Msg("Error enabling pgcrypto extension")
	}

	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		zlog.Fatal().Err(err).Msg("Error testing database connection")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tech{},
		&models.Project{},
		&models.Profile{},
	); err != nil {
		zlog.Fatal().Err(err).Msg("Error running migrations")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		// Rate limiting degrades to fail-open without redis.
		zlog.Warn().Err(err).Msg("Redis unreachable, rate limiting disabled")
		rdb = nil
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(cfg, database.New(db), rdb)
	if err != nil {
		zlog.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	zlog.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
