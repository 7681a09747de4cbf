package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avelara/portfolio-backend/models"
)

func TestTechCreate(t *testing.T) {
	t.Run("requires a name", func(t *testing.T) {
		svc := NewTechService(&fakeTechStore{})

		_, err := svc.Create(TechInput{})
		assert.Equal(t, 400, apiStatus(t, err))
	})

	t.Run("allocates slug from name", func(t *testing.T) {
		store := &fakeTechStore{}
		svc := NewTechService(store)

		tech, err := svc.Create(TechInput{Name: strPtr("Node.js")})
		require.NoError(t, err)
		assert.Equal(t, "node-js", tech.Slug)
		assert.Equal(t, models.CategoryOther, tech.Category)

		again, err := svc.Create(TechInput{Name: strPtr("Node JS")})
		require.NoError(t, err)
		assert.Equal(t, "node-js-1", again.Slug)
	})

	t.Run("explicit slug and category win", func(t *testing.T) {
		svc := NewTechService(&fakeTechStore{})

		tech, err := svc.Create(TechInput{
			Name:     strPtr("Go"),
			Slug:     strPtr(" Golang "),
			Category: strPtr(models.CategoryLanguage),
		})
		require.NoError(t, err)
		assert.Equal(t, "golang", tech.Slug)
		assert.Equal(t, models.CategoryLanguage, tech.Category)
	})
}

func TestTechList(t *testing.T) {
	store := &fakeTechStore{}
	svc := NewTechService(store)

	_, err := svc.Create(TechInput{Name: strPtr("Go")})
	require.NoError(t, err)

	tech, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, tech, 1)
}
