package backoffice

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the console. The backend base URL is
// the single externally supplied value every request is built from; no
// handler carries its own endpoint literal.
type Config struct {
	Addr    string        `yaml:"addr"`
	Backend BackendConfig `yaml:"backend"`

	SessionSecret string `yaml:"session_secret"`
	CookieSecure  bool   `yaml:"cookie_secure"`

	PreviewDir   string `yaml:"preview_dir"`
	AuditDBPath  string `yaml:"audit_db"`
	LoginMaxTry  int    `yaml:"login_max_attempts"`
	LoginWindowS int    `yaml:"login_window_seconds"`
}

// BackendConfig points the resource client at the content-platform API.
type BackendConfig struct {
	URL string `yaml:"url"`
}

// Validate validates the backend configuration.
func (c *BackendConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.URL, validation.Required, is.URL),
	)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Backend.Validate(); err != nil {
		return err
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Addr, validation.Required),
		validation.Field(&c.SessionSecret, validation.Required),
	)
}

func (c *Config) setDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.PreviewDir == "" {
		c.PreviewDir = filepath.Join(os.TempDir(), "backoffice-previews")
	}
	if c.AuditDBPath == "" {
		c.AuditDBPath = "data/audit.db"
	}
	if c.LoginMaxTry == 0 {
		c.LoginMaxTry = 5
	}
	if c.LoginWindowS == 0 {
		c.LoginWindowS = 60
	}
}

// LoadConfig loads a YAML config file with environment variable expansion,
// applies defaults, and validates the result.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file %s: %w", path, err)
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}
