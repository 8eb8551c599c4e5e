package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/aidigest/pkg/domain"
)

func TestProfileRepository_SaveProfile(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("save full record", func(t *testing.T) {
		beforeSave := time.Now().Add(-time.Second)
		profile := &domain.Profile{
			Persona:               domain.PersonaDeepDive,
			City:                  "Amsterdam",
			Theme:                 domain.ThemeDark,
			NotificationFrequency: domain.FrequencyDaily,
		}
		err := repos.Profile.SaveProfile(context.Background(), profile)
		require.NoError(t, err)

		got, err := repos.Profile.GetProfile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.PersonaDeepDive, got.Persona)
		assert.Equal(t, "Amsterdam", got.City)
		assert.Equal(t, domain.ThemeDark, got.Theme)
		assert.Equal(t, domain.FrequencyDaily, got.NotificationFrequency)
		assert.True(t, got.UpdatedAt.After(beforeSave), "updated_at should advance on save")
	})

	t.Run("overlay single field keeps the rest", func(t *testing.T) {
		// read-modify-write the city only
		current, err := repos.Profile.GetProfile(context.Background())
		require.NoError(t, err)
		current.City = "Rotterdam"
		require.NoError(t, repos.Profile.SaveProfile(context.Background(), current))

		got, err := repos.Profile.GetProfile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Rotterdam", got.City)
		assert.Equal(t, domain.PersonaDeepDive, got.Persona)
		assert.Equal(t, domain.ThemeDark, got.Theme)
		assert.Equal(t, domain.FrequencyDaily, got.NotificationFrequency)
	})
}

func TestProfileRepository_SetPersona(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	err := repos.Profile.SetPersona(context.Background(), domain.PersonaHeadlines)
	require.NoError(t, err)

	got, err := repos.Profile.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PersonaHeadlines, got.Persona)

	// other fields stay at defaults
	def := domain.DefaultProfile()
	assert.Equal(t, def.City, got.City)
	assert.Equal(t, def.Theme, got.Theme)
	assert.Equal(t, def.NotificationFrequency, got.NotificationFrequency)
}

func TestProfileRepository_ToggleTheme(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	// default is light
	theme, err := repos.Profile.ToggleTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	theme, err = repos.Profile.ToggleTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)

	// returned value matches the stored one
	got, err := repos.Profile.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, theme, got.Theme)
}
