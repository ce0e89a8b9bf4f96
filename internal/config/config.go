package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/graphdesc/graphdesc/internal/errors"
)

// Config holds all configuration settings
type Config struct {
	// Neo4j connection settings
	Neo4j Neo4jConfig `mapstructure:"neo4j" yaml:"neo4j"`

	// Upload behavior
	Upload UploadConfig `mapstructure:"upload" yaml:"upload"`
}

type Neo4jConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
	Database string `mapstructure:"database" yaml:"database"`
}

type UploadConfig struct {
	// Clear deletes the existing graph before uploading (default: true)
	Clear bool `mapstructure:"clear" yaml:"clear"`
	// Quiet disables progress output
	Quiet bool `mapstructure:"quiet" yaml:"quiet"`
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Neo4j: Neo4jConfig{
			Port:     7687,
			Database: "neo4j",
		},
		Upload: UploadConfig{
			Clear: true,
		},
	}
}

// Load loads configuration from file, environment and defaults.
// Precedence: environment variables, then config file, then defaults.
func Load(path string) (*Config, error) {
	// Load .env files first so env overrides see them
	loadEnvFiles()

	v := viper.New()
	v.SetConfigType("yaml")

	cfg := Default()
	v.SetDefault("neo4j", cfg.Neo4j)
	v.SetDefault("upload", cfg.Upload)

	v.SetEnvPrefix("GRAPHDESC")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".graphdesc")
		v.AddConfigPath(".")
		homeDir, _ := os.UserHomeDir()
		v.AddConfigPath(filepath.Join(homeDir, ".graphdesc"))
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.ConfigErrorf("failed to read config: %v", err)
		}
		// No config file is fine, defaults apply
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ConfigErrorf("failed to unmarshal config: %v", err)
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadEnvFiles loads .env files in order of precedence
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			godotenv.Load(file)
		}
	}

	homeDir, _ := os.UserHomeDir()
	homeEnvFile := filepath.Join(homeDir, ".graphdesc", ".env")
	if _, err := os.Stat(homeEnvFile); err == nil {
		godotenv.Load(homeEnvFile)
	}
}

// applyEnvOverrides applies NEO4J_* environment variables, which follow the
// conventional names used by Neo4j tooling rather than the GRAPHDESC prefix.
func applyEnvOverrides(cfg *Config) {
	cfg.Neo4j.Host = GetString("NEO4J_HOST", cfg.Neo4j.Host)
	cfg.Neo4j.Port = GetInt("NEO4J_PORT", cfg.Neo4j.Port)
	cfg.Neo4j.User = GetString("NEO4J_USER", cfg.Neo4j.User)
	cfg.Neo4j.Password = GetString("NEO4J_PASSWORD", cfg.Neo4j.Password)
	cfg.Neo4j.Database = GetString("NEO4J_DATABASE", cfg.Neo4j.Database)
}

// Helper functions for type-safe environment variable access

// GetString returns string value or default
func GetString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// GetInt returns int value or default
func GetInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

// GetBool returns bool value or default
func GetBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
