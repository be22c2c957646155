package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	Graph     GraphConfig
	Gemini    GeminiConfig
	Financial FinancialConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

type LoggerConfig struct {
	Level  string
	Format string
}

// GraphConfig holds Microsoft Graph credentials for SharePoint provisioning.
type GraphConfig struct {
	Enabled      bool
	TenantID     string
	ClientID     string
	ClientSecret string
	SiteID       string
	DriveID      string
	Timeout      time.Duration
}

// GeminiConfig holds the document-extraction model settings.
type GeminiConfig struct {
	Enabled bool
	APIKey  string
	Model   string
	Timeout time.Duration
}

// FinancialConfig carries modeling bounds that are deployment-wide rather than
// per-trade assumptions.
type FinancialConfig struct {
	IRRFloor float64
	IRRCap   float64
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "asset_mgmt")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")

	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	v.SetDefault("GRAPH_ENABLED", false)
	v.SetDefault("GRAPH_TENANT_ID", "")
	v.SetDefault("GRAPH_CLIENT_ID", "")
	v.SetDefault("GRAPH_CLIENT_SECRET", "")
	v.SetDefault("GRAPH_SITE_ID", "")
	v.SetDefault("GRAPH_DRIVE_ID", "")
	v.SetDefault("GRAPH_TIMEOUT", "30s")

	v.SetDefault("GEMINI_ENABLED", false)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_TIMEOUT", "60s")

	v.SetDefault("IRR_FLOOR", -0.99)
	v.SetDefault("IRR_CAP", 5.0)

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration(v.GetString("DB_CONN_MAX_LIFETIME"), 30*time.Minute),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Graph: GraphConfig{
			Enabled:      v.GetBool("GRAPH_ENABLED"),
			TenantID:     v.GetString("GRAPH_TENANT_ID"),
			ClientID:     v.GetString("GRAPH_CLIENT_ID"),
			ClientSecret: v.GetString("GRAPH_CLIENT_SECRET"),
			SiteID:       v.GetString("GRAPH_SITE_ID"),
			DriveID:      v.GetString("GRAPH_DRIVE_ID"),
			Timeout:      parseDuration(v.GetString("GRAPH_TIMEOUT"), 30*time.Second),
		},
		Gemini: GeminiConfig{
			Enabled: v.GetBool("GEMINI_ENABLED"),
			APIKey:  v.GetString("GEMINI_API_KEY"),
			Model:   v.GetString("GEMINI_MODEL"),
			Timeout: parseDuration(v.GetString("GEMINI_TIMEOUT"), 60*time.Second),
		},
		Financial: FinancialConfig{
			IRRFloor: v.GetFloat64("IRR_FLOOR"),
			IRRCap:   v.GetFloat64("IRR_CAP"),
		},
	}

	return cfg, nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
