package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// SourceType identifies the catalog backend
type SourceType string

const (
	SourceTypeSeed     SourceType = "seed"
	SourceTypeSupabase SourceType = "supabase"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Source   SourceConfig   `mapstructure:"source"`
	Supabase SupabaseConfig `mapstructure:"supabase"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// SourceConfig selects the catalog data source
type SourceConfig struct {
	Type SourceType `mapstructure:"type"` // "seed" or "supabase"
}

// SupabaseConfig holds remote store configuration
type SupabaseConfig struct {
	URL     string `mapstructure:"url"`      // Project base URL
	AnonKey string `mapstructure:"anon_key"` // API key sent on every request
}

// StorageConfig holds object storage configuration for admin uploads
type StorageConfig struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8590,
		},
		Source: SourceConfig{
			Type: SourceTypeSeed,
		},
		Storage: StorageConfig{
			Region: "us-east-1",
		},
		Logging: LoggingConfig{
			File:       defaultLogPath(),
			Level:      "INFO",
			MaxSizeMB:  20,
			MaxBackups: 3,
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "mural", "mural.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "mural", "mural.log")
	}
}

// defaultConfigPath returns the default config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "mural")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "mural")
	}
}

// DefaultDataPath returns the directory holding the local store database
func DefaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "mural")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "mural")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(defaultConfigPath())
	viper.AddConfigPath(".")

	// Environment variable overrides
	viper.SetEnvPrefix("MURAL")
	viper.AutomaticEnv()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the selected source has the configuration it needs
func (c *Config) Validate() error {
	switch c.Source.Type {
	case SourceTypeSeed:
		return nil
	case SourceTypeSupabase:
		if c.Supabase.URL == "" {
			return fmt.Errorf("supabase source requires supabase.url")
		}
		if c.Supabase.AnonKey == "" {
			return fmt.Errorf("supabase source requires supabase.anon_key")
		}
		return nil
	default:
		return fmt.Errorf("unknown source type: %s", c.Source.Type)
	}
}
