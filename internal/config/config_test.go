package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveBackendURL(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		env      string
		want     string
		wantErr  bool
	}{
		{name: "development default", env: "development", want: LocalBackendURL},
		{name: "production default", env: "production", want: ServiceBackendURL},
		{name: "explicit wins", explicit: "https://api.example.com/api/", env: "development", want: "https://api.example.com/api"},
		{name: "bad scheme", explicit: "ftp://example.com", env: "production", wantErr: true},
		{name: "missing host", explicit: "http://", env: "production", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveBackendURL(tt.explicit, tt.env)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("BACKEND_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, LocalBackendURL, cfg.BackendURL)
	assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 2024, cfg.DefaultSeason)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("BACKEND_URL", "")
	t.Setenv("PORT", "9090")
	t.Setenv("BACKEND_TIMEOUT", "30s")
	t.Setenv("CACHE_TTL", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, ServiceBackendURL, cfg.BackendURL)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL, "invalid duration falls back to default")
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("BACKEND_URL", "")
	t.Setenv("BACKEND_TIMEOUT", "-1s")

	_, err := Load()
	assert.Error(t, err)
}
