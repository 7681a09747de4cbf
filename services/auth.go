package services

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/avelara/portfolio-backend/auth"
	"github.com/avelara/portfolio-backend/database"
	"github.com/avelara/portfolio-backend/errs"
	"github.com/avelara/portfolio-backend/models"
)

type AuthService struct {
	logger    zerolog.Logger
	users     database.UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(users database.UserStore, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	logger := log.With().Str("serviceName", "authService").Logger()

	return &AuthService{
		logger:    logger,
		users:     users,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
	}
}

// Signup creates an admin account. Username, password and reset secret must
// be pairwise distinct in plaintext; only hashes are stored.
func (s *AuthService) Signup(username, password, resetSecret string) (*models.User, error) {
	if username == password ||
		(resetSecret != "" && (username == resetSecret || password == resetSecret)) {
		return nil, errs.NewBadRequestError("reset secret cannot match username or password")
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, errs.NewInternalErrorWithCause("failed to hash password", err)
	}

	user := &models.User{
		Username: username,
		Password: passwordHash,
	}
	if resetSecret != "" {
		secretHash, err := auth.HashPassword(resetSecret)
		if err != nil {
			return nil, errs.NewInternalErrorWithCause("failed to hash reset secret", err)
		}
		user.ResetPasswordSecret = &secretHash
	}

	if err := s.users.Add(user); err != nil {
		return nil, errs.NewDatabaseError("create", "user", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("user signed up")
	return user, nil
}

// Login verifies credentials and issues a time-bounded bearer token. Unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*models.User, string, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, "", errs.NewDatabaseError("find", "user", err)
	}
	if user == nil || !auth.ComparePassword(password, user.Password) {
		s.logger.Warn().Str("username", username).Msg("failed login attempt")
		return nil, "", errs.NewUnauthorizedError("invalid credentials")
	}

	token, err := auth.GenerateToken(user, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return nil, "", errs.NewInternalErrorWithCause("failed to issue token", err)
	}
	return user, token, nil
}

// UpdatePassword changes a password after verifying the reset secret.
func (s *AuthService) UpdatePassword(username, resetSecret, newPassword string) error {
	user, err := s.verifyResetSecret(username, resetSecret)
	if err != nil {
		return err
	}

	passwordHash, err := auth.HashPassword(newPassword)
	if err != nil {
		return errs.NewInternalErrorWithCause("failed to hash password", err)
	}
	user.Password = passwordHash

	if err := s.users.Save(user); err != nil {
		return errs.NewDatabaseError("update", "user", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("password updated")
	return nil
}

// UpdateUsername renames an account after verifying the reset secret. The
// new name is subject to the store's unique constraint.
func (s *AuthService) UpdateUsername(username, resetSecret, newUsername string) (*models.User, error) {
	user, err := s.verifyResetSecret(username, resetSecret)
	if err != nil {
		return nil, err
	}

	user.Username = newUsername
	if err := s.users.Save(user); err != nil {
		return nil, errs.NewDatabaseError("update", "user", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("username updated")
	return user, nil
}

func (s *AuthService) verifyResetSecret(username, resetSecret string) (*models.User, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, errs.NewNotFoundError("user not found")
	}
	if user.ResetPasswordSecret == nil || !auth.ComparePassword(resetSecret, *user.ResetPasswordSecret) {
		s.logger.Warn().Str("username", username).Msg("reset secret verification failed")
		return nil, errs.NewForbiddenError("invalid reset secret")
	}
	return user, nil
}
