package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Behyna/sms-services/templateconsole/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom(t *testing.T) {
	t.Run("defaults apply without a config file", func(t *testing.T) {
		cfg, err := config.LoadFrom(t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.API.Port)
		assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
		assert.Equal(t, 10, cfg.Backend.PageSize)
		assert.Equal(t, "MARKETER", cfg.Session.DefaultRole)
		assert.Equal(t, 50, cfg.Records.PageSize)
		assert.False(t, cfg.RabbitMQ.Enable)
		assert.Equal(t, "template.journal", cfg.RabbitMQ.Queue)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		dir := t.TempDir()
		content := "backend:\n  base_url: \"http://tpl.internal\"\n  timeout: 3s\nsession:\n  default_role: \"MANAGER\"\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o600))

		cfg, err := config.LoadFrom(dir)

		require.NoError(t, err)
		assert.Equal(t, "http://tpl.internal", cfg.Backend.BaseURL)
		assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
		assert.Equal(t, "MANAGER", cfg.Session.DefaultRole)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv("TEMPLATECONSOLE_SESSION_DEFAULT_USER", "jordan")

		cfg, err := config.LoadFrom(t.TempDir())

		require.NoError(t, err)
		assert.Equal(t, "jordan", cfg.Session.DefaultUser)
	})

	t.Run("invalid yaml fails", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte("api: [unclosed"), 0o600))

		_, err := config.LoadFrom(dir)

		assert.Error(t, err)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("configured level", func(t *testing.T) {
		logger, err := config.NewLogger(&config.Config{Log: config.Log{Level: "debug"}})

		require.NoError(t, err)
		assert.True(t, logger.Core().Enabled(-1))
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := config.NewLogger(&config.Config{Log: config.Log{Level: "loud"}})

		assert.Error(t, err)
	})
}
