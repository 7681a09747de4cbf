package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelara/portfolio-backend/auth"
	"github.com/avelara/portfolio-backend/models"
)

const testJWTSecret = "test-secret"

type fakeUserStore struct {
	users []*models.User
}

func (f *fakeUserStore) FindByUsername(username string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Add(user *models.User) error {
	if existing, _ := f.FindByUsername(user.Username); existing != nil {
		return errors.New(`duplicate key value violates unique constraint "idx_users_username"`)
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) Save(user *models.User) error {
	for i, u := range f.users {
		if u.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return errors.New("record not found")
}

func newTestAuthService() (*AuthService, *fakeUserStore) {
	store := &fakeUserStore{}
	return NewAuthService(store, testJWTSecret, time.Hour), store
}

func TestSignup_RejectsMatchingCredentials(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Signup("admin", "admin", "")
	assert.Equal(t, 400, apiStatus(t, err))

	_, err = svc.Signup("admin", "password1", "admin")
	assert.Equal(t, 400, apiStatus(t, err))

	_, err = svc.Signup("admin", "password1", "password1")
	assert.Equal(t, 400, apiStatus(t, err))
}

func TestSignup_StoresHashesOnly(t *testing.T) {
	svc, store := newTestAuthService()

	user, err := svc.Signup("admin", "hunter2hunter2", "rescue-phrase")
	require.NoError(t, err)

	stored, _ := store.FindByUsername("admin")
	require.NotNil(t, stored)
	assert.Equal(t, user.ID, stored.ID)
	assert.NotEqual(t, "hunter2hunter2", stored.Password)
	assert.True(t, auth.ComparePassword("hunter2hunter2", stored.Password))
	require.NotNil(t, stored.ResetPasswordSecret)
	assert.NotEqual(t, "rescue-phrase", *stored.ResetPasswordSecret)
	assert.True(t, auth.ComparePassword("rescue-phrase", *stored.ResetPasswordSecret))
}

func TestSignup_OptionalResetSecret(t *testing.T) {
	svc, store := newTestAuthService()

	_, err := svc.Signup("admin", "hunter2hunter2", "")
	require.NoError(t, err)

	stored, _ := store.FindByUsername("admin")
	assert.Nil(t, stored.ResetPasswordSecret)
}

func TestSignup_DuplicateUsernameConflicts(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Signup("admin", "hunter2hunter2", "")
	require.NoError(t, err)

	_, err = svc.Signup("admin", "otherpassword", "")
	assert.Equal(t, 409, apiStatus(t, err))
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Signup("admin", "hunter2hunter2", "")
	require.NoError(t, err)

	t.Run("issues a valid token", func(t *testing.T) {
		user, token, err := svc.Login("admin", "hunter2hunter2")
		require.NoError(t, err)
		assert.Equal(t, "admin", user.Username)

		claims, err := auth.ValidateToken(token, testJWTSecret)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, "admin", claims.Username)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		_, _, err := svc.Login("admin", "wrong")
		assert.Equal(t, 401, apiStatus(t, err))
	})

	t.Run("unknown user is unauthorized", func(t *testing.T) {
		_, _, err := svc.Login("ghost", "hunter2hunter2")
		assert.Equal(t, 401, apiStatus(t, err))
	})
}

func TestUpdatePassword(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Signup("admin", "hunter2hunter2", "rescue-phrase")
	require.NoError(t, err)

	t.Run("unknown user", func(t *testing.T) {
		err := svc.UpdatePassword("ghost", "rescue-phrase", "newpassword1")
		assert.Equal(t, 404, apiStatus(t, err))
	})

	t.Run("wrong reset secret is forbidden", func(t *testing.T) {
		err := svc.UpdatePassword("admin", "nope", "newpassword1")
		assert.Equal(t, 403, apiStatus(t, err))
	})

	t.Run("rotates the password", func(t *testing.T) {
		require.NoError(t, svc.UpdatePassword("admin", "rescue-phrase", "newpassword1"))

		_, _, err := svc.Login("admin", "hunter2hunter2")
		assert.Equal(t, 401, apiStatus(t, err))
		_, _, err = svc.Login("admin", "newpassword1")
		assert.NoError(t, err)
	})
}

func TestUpdatePassword_NoSecretOnRecord(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Signup("admin", "hunter2hunter2", "")
	require.NoError(t, err)

	err = svc.UpdatePassword("admin", "anything", "newpassword1")
	assert.Equal(t, 403, apiStatus(t, err))
}

func TestUpdateUsername(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Signup("admin", "hunter2hunter2", "rescue-phrase")
	require.NoError(t, err)

	t.Run("wrong reset secret is forbidden", func(t *testing.T) {
		_, err := svc.UpdateUsername("admin", "nope", "root")
		assert.Equal(t, 403, apiStatus(t, err))
	})

	t.Run("renames the account", func(t *testing.T) {
		user, err := svc.UpdateUsername("admin", "rescue-phrase", "root")
		require.NoError(t, err)
		assert.Equal(t, "root", user.Username)

		_, _, err = svc.Login("root", "hunter2hunter2")
		assert.NoError(t, err)
	})
}
