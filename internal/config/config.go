// Package config loads the runtime configuration once at process start.
// Values come from an optional YAML file; environment variables take
// precedence so the container setup from the original deployment keeps
// working unchanged.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort         = 8000
	defaultEnv          = "development"
	defaultMongoURL     = "mongodb://localhost:27017"
	defaultDBName       = "espace_agenda"
	defaultSMTPHost     = "localhost"
	defaultSMTPPort     = 1025
	defaultContactEmail = "contact@espaceagenda.fr"
)

// AppConfig holds runtime startup configuration.
type AppConfig struct {
	Port           int            `yaml:"port"`
	Env            string         `yaml:"env"` // "development" | "production"
	AllowedOrigins []string       `yaml:"allowed_origins"`
	Database       DatabaseConfig `yaml:"database"`
	Mail           MailConfig     `yaml:"mail"`
}

// DatabaseConfig holds MongoDB connection settings.
type DatabaseConfig struct {
	URL  string `yaml:"url"`
	Name string `yaml:"name"`
}

// MailConfig holds SMTP transport settings for contact notifications.
type MailConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	UseTLS   bool   `yaml:"use_tls"`
	// ContactEmail is both the sender address and the team inbox.
	ContactEmail string `yaml:"contact_email"`
}

// Load reads the YAML file at path (if it exists) and applies environment
// overrides on top of built-in defaults.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Database: DatabaseConfig{
			URL:  defaultMongoURL,
			Name: defaultDBName,
		},
		Mail: MailConfig{
			Host:         defaultSMTPHost,
			Port:         defaultSMTPPort,
			ContactEmail: defaultContactEmail,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// config file is optional, env-only setups are fine
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return !strings.EqualFold(c.Env, "production")
}

func applyEnv(cfg *AppConfig) {
	cfg.Port = envInt("PORT", cfg.Port)
	cfg.Env = envString("ENV", cfg.Env)
	cfg.Database.URL = envString("MONGO_URL", cfg.Database.URL)
	cfg.Database.Name = envString("DB_NAME", cfg.Database.Name)
	cfg.Mail.Host = envString("SMTP_HOST", cfg.Mail.Host)
	cfg.Mail.Port = envInt("SMTP_PORT", cfg.Mail.Port)
	cfg.Mail.User = envString("SMTP_USER", cfg.Mail.User)
	cfg.Mail.Password = envString("SMTP_PASSWORD", cfg.Mail.Password)
	cfg.Mail.UseTLS = envBool("SMTP_USE_TLS", cfg.Mail.UseTLS)
	cfg.Mail.ContactEmail = envString("CONTACT_EMAIL", cfg.Mail.ContactEmail)

	if origins := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")); origins != "" {
		parts := strings.Split(origins, ",")
		cfg.AllowedOrigins = cfg.AllowedOrigins[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, p)
			}
		}
	}
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return strings.EqualFold(v, "true") || v == "1"
}
