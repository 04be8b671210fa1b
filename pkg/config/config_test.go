package config

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "PUBLIC_DIR", "LYRICS_API_URL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Empty(t, cfg.PublicDir)
	assert.Equal(t, DefaultLyricsAPIURL, cfg.LyricsAPIURL)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("PUBLIC_DIR", "/srv/public")
	t.Setenv("LYRICS_API_URL", "http://127.0.0.1:9000/lyrics")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, "/srv/public", cfg.PublicDir)
	assert.Equal(t, "http://127.0.0.1:9000/lyrics", cfg.LyricsAPIURL)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoadInvalidPort(t *testing.T) {
	for _, v := range []string{"abc", "0", "-1", "70000", "30 00"} {
		t.Run(v, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PORT", v)

			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPort))
		})
	}
}

func TestLoadInvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetUpgrader(t *testing.T) {
	u := GetUpgrader()
	assert.Nil(t, u.CheckOrigin)
	assert.Equal(t, 1024, u.ReadBufferSize)
}
