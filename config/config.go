package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is built once at startup and only read afterwards.
type Config struct {
	Habitica HabiticaConfig `toml:"habitica"`
	Site     SiteConfig     `toml:"site"`
	Server   ServerConfig   `toml:"server"`
}

type HabiticaConfig struct {
	APIKey  string   `toml:"api_key"`
	UserID  string   `toml:"user_id"`
	Client  string   `toml:"client"`
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
}

// SiteConfig holds the single login pair and the session token it unlocks.
// The password is compared in plaintext.
type SiteConfig struct {
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	AuthzToken string `toml:"authz_token"`
}

type ServerConfig struct {
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

// Duration lets TOML files carry values like "10s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MissingError lists required settings that were not supplied.
type MissingError struct {
	Keys []string
}

func (e *MissingError) Error() string {
	return "missing required configuration: " + strings.Join(e.Keys, ", ")
}

// Default returns a Config holding only the optional defaults.
func Default() *Config {
	return &Config{
		Habitica: HabiticaConfig{
			Client:  DefaultClient,
			BaseURL: DefaultBaseURL,
			Timeout: Duration{DefaultTimeout},
		},
		Server: ServerConfig{
			Port:     DefaultPort,
			LogLevel: DefaultLogLevel,
		},
	}
}

// Load builds the configuration from defaults, the optional TOML file at path, and the
// process environment, in increasing precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Habitica.APIKey, "HABITICA_API_KEY")
	setString(&c.Habitica.UserID, "HABITICA_USER_ID")
	setString(&c.Habitica.Client, "HABITICA_CLIENT")
	setString(&c.Habitica.BaseURL, "HABITICA_BASE_URL")
	setString(&c.Site.Username, "SITE_USERNAME")
	setString(&c.Site.Password, "SITE_PASSWORD")
	setString(&c.Site.AuthzToken, "AUTHZ_TOKEN")
	setString(&c.Server.LogLevel, "LOG_LEVEL")

	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", v, err)
		}
		c.Habitica.Timeout = Duration{d}
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// Validate reports every required setting that is empty.
func (c *Config) Validate() error {
	var missing []string
	required := []struct {
		key   string
		value string
	}{
		{"HABITICA_API_KEY", c.Habitica.APIKey},
		{"HABITICA_USER_ID", c.Habitica.UserID},
		{"SITE_USERNAME", c.Site.Username},
		{"SITE_PASSWORD", c.Site.Password},
		{"AUTHZ_TOKEN", c.Site.AuthzToken},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return &MissingError{Keys: missing}
	}

	if c.Habitica.Timeout.Duration <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got %s", c.Habitica.Timeout)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}
