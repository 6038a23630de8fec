package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("IS_PRODUCTION", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 2000, cfg.DefaultRangeStartYear)
	assert.Equal(t, 2100, cfg.DefaultRangeEndYear)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DEFAULT_RANGE_START_YEAR", "2020")
	t.Setenv("DEFAULT_RANGE_END_YEAR", "2030")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 2020, cfg.DefaultRangeStartYear)
	assert.Equal(t, 2030, cfg.DefaultRangeEndYear)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"default secret in production", map[string]string{"IS_PRODUCTION": "true", "JWT_SECRET": ""}},
		{"unknown log level", map[string]string{"LOG_LEVEL": "chatty"}},
		{"inverted default range", map[string]string{"DEFAULT_RANGE_START_YEAR": "2050", "DEFAULT_RANGE_END_YEAR": "2040"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
