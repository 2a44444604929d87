package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Storage drivers
const (
	StorageMemory   = "memory"
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Storage configuration
	StorageDriver string `mapstructure:"STORAGE_DRIVER"`
	StoragePath   string `mapstructure:"STORAGE_PATH"`

	// Database configuration (postgres driver)
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// MongoDB configuration (mongo driver)
	MongoURI        string `mapstructure:"MONGO_URI"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`
	MongoCollection string `mapstructure:"MONGO_COLLECTION"`

	// Seed configuration
	SeedDemoData bool   `mapstructure:"SEED_DEMO_DATA"`
	SeedFile     string `mapstructure:"SEED_FILE"`

	// Localization
	DefaultLanguage string `mapstructure:"DEFAULT_LANGUAGE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.StorageDriver = strings.ToLower(strings.TrimSpace(config.StorageDriver))
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("PORT", "7008")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("STORAGE_DRIVER", StorageFile)
	v.SetDefault("STORAGE_PATH", "data/local_storage.json")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "employee_roster")
	v.SetDefault("DB_SSL_MODE", "disable")

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "employee_roster")
	v.SetDefault("MONGO_COLLECTION", "local_storage")

	v.SetDefault("SEED_DEMO_DATA", true)
	v.SetDefault("SEED_FILE", "")

	v.SetDefault("DEFAULT_LANGUAGE", "en")

	v.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	switch config.StorageDriver {
	case StorageMemory:
	case StorageFile:
		if config.StoragePath == "" {
			return fmt.Errorf("STORAGE_PATH is required for the file storage driver")
		}
	case StoragePostgres:
		if config.DatabaseName == "" {
			return fmt.Errorf("database name is required")
		}
	case StorageMongo:
		if config.MongoURI == "" || config.MongoDatabase == "" || config.MongoCollection == "" {
			return fmt.Errorf("MONGO_URI, MONGO_DATABASE and MONGO_COLLECTION are required for the mongo storage driver")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", config.StorageDriver)
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
