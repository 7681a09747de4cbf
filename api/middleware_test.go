package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelara/portfolio-backend/auth"
	"github.com/avelara/portfolio-backend/models"
)

func newAuthedHandler(t *testing.T) (http.Handler, string) {
	t.Helper()

	user := &models.User{ID: uuid.New(), Username: "admin"}
	token, err := auth.GenerateToken(user, "secret", time.Hour)
	require.NoError(t, err)

	m := newAuthMiddleware("secret")
	handler := m.authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := ctxGetClaims(r.Context())
		require.NotNil(t, claims)
		assert.Equal(t, user.ID, claims.UserID)
		w.WriteHeader(http.StatusOK)
	}))
	return handler, token
}

func TestAuthenticate_SessionCookie(t *testing.T) {
	handler, token := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_BearerToken(t *testing.T) {
	handler, token := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	handler, _ := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_BadToken(t *testing.T) {
	handler, _ := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	user := &models.User{ID: uuid.New(), Username: "admin"}
	token, err := auth.GenerateToken(user, "other-secret", time.Hour)
	require.NoError(t, err)

	handler, _ := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
