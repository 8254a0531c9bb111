package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration settings.
type Config struct {
	Environment string `envconfig:"ENV" default:"development"`

	HTTPPort    int           `envconfig:"HTTP_PORT" default:"8080"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`

	MaxUploadSize     int64    `envconfig:"MAX_UPLOAD_SIZE" default:"10485760"`
	AllowedExtensions []string `envconfig:"ALLOWED_EXTENSIONS" default:"pdf,doc,docx,jpg,jpeg,png,txt"`

	UploadDelay    time.Duration `envconfig:"UPLOAD_DELAY" default:"1500ms"`
	AnalysisDelay  time.Duration `envconfig:"ANALYSIS_DELAY" default:"3s"`
	JobSearchDelay time.Duration `envconfig:"JOB_SEARCH_DELAY" default:"2s"`

	SessionTTL      time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	JanitorInterval time.Duration `envconfig:"JANITOR_INTERVAL" default:"1m"`

	FixturesFile string `envconfig:"FIXTURES_FILE"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Validate checks the configuration for invalid or missing values.
// Returns an error describing the first invalid setting found.
func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("max upload size must be positive: %d", c.MaxUploadSize)
	}

	if len(c.AllowedExtensions) == 0 {
		return fmt.Errorf("allowed extensions cannot be empty")
	}

	if c.UploadDelay < 0 || c.AnalysisDelay < 0 || c.JobSearchDelay < 0 {
		return fmt.Errorf("simulated delays cannot be negative")
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("session TTL must be positive: %s", c.SessionTTL)
	}
	if c.JanitorInterval <= 0 {
		return fmt.Errorf("janitor interval must be positive: %s", c.JanitorInterval)
	}

	return nil
}
