package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	t.Run("valid config passes", func(t *testing.T) {
		var cfg Config
		cfg.Server.Listen = ":8080"
		cfg.Server.Timeout = 30 * time.Second

		err := VerifyAgainstEmbeddedSchema(&cfg)
		assert.NoError(t, err)
	})

	t.Run("missing listen fails", func(t *testing.T) {
		var cfg Config
		cfg.Server.Timeout = 30 * time.Second

		err := VerifyAgainstEmbeddedSchema(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.listen is required")
	})

	t.Run("missing timeout fails", func(t *testing.T) {
		var cfg Config
		cfg.Server.Listen = ":8080"

		err := VerifyAgainstEmbeddedSchema(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server.timeout is required")
	})

	t.Run("provider without timeout fails", func(t *testing.T) {
		var cfg Config
		cfg.Server.Listen = ":8080"
		cfg.Server.Timeout = 30 * time.Second
		cfg.Notifications.ProviderURL = "https://notify.example.com"

		err := VerifyAgainstEmbeddedSchema(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "notifications.timeout")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema, err := GenerateSchema()
	require.NoError(t, err)
	require.NotNil(t, schema)
}
