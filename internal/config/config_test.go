package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func missingEnvFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, int64(10485760), cfg.MaxUploadSize)
	assert.Equal(t, []string{"pdf", "doc", "docx", "jpg", "jpeg", "png", "txt"}, cfg.AllowedExtensions)
	assert.Equal(t, 1500*time.Millisecond, cfg.UploadDelay)
	assert.Equal(t, 3*time.Second, cfg.AnalysisDelay)
	assert.Equal(t, 2*time.Second, cfg.JobSearchDelay)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Empty(t, cfg.FixturesFile)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("RESUMATCH_HTTP_PORT", "9090")
	t.Setenv("RESUMATCH_ALLOWED_EXTENSIONS", "pdf,txt")
	t.Setenv("RESUMATCH_ANALYSIS_DELAY", "250ms")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, []string{"pdf", "txt"}, cfg.AllowedExtensions)
	assert.Equal(t, 250*time.Millisecond, cfg.AnalysisDelay)
}

func TestLoad_EnvFile(t *testing.T) {
	const key = "RESUMATCH_LOG_FORMAT"
	t.Cleanup(func() { os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=text\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("RESUMATCH_HTTP_PORT", "70000")

	_, err := Load(missingEnvFile(t))
	assert.Error(t, err)
}

func TestLoad_MissingFixturesFile(t *testing.T) {
	t.Setenv("RESUMATCH_FIXTURES_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load(missingEnvFile(t))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			HTTPPort:          8080,
			MaxUploadSize:     1,
			AllowedExtensions: []string{"pdf"},
			SessionTTL:        time.Minute,
			JanitorInterval:   time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "zero port", mutate: func(c *Config) { c.HTTPPort = 0 }, wantErr: true},
		{name: "zero upload size", mutate: func(c *Config) { c.MaxUploadSize = 0 }, wantErr: true},
		{name: "no extensions", mutate: func(c *Config) { c.AllowedExtensions = nil }, wantErr: true},
		{name: "negative delay", mutate: func(c *Config) { c.UploadDelay = -time.Second }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.SessionTTL = 0 }, wantErr: true},
		{name: "zero janitor interval", mutate: func(c *Config) { c.JanitorInterval = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
