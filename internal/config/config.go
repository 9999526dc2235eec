package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the generator and trainer binaries need.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Qdrant   QdrantConfig   `yaml:"qdrant"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST"`
	Port     string `yaml:"port" env:"POSTGRES_PORT"`
	User     string `yaml:"user" env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"dbname" env:"POSTGRES_DB"`
	SSLMode  string `yaml:"sslmode" env:"POSTGRES_SSLMODE"`
	MaxConns int    `yaml:"max_conns" env:"POSTGRES_MAX_CONNS"`
}

// QdrantConfig holds vector store connection settings.
type QdrantConfig struct {
	URL     string        `yaml:"url" env:"QDRANT_URL"`
	APIKey  string        `yaml:"api_key" env:"QDRANT_API_KEY"`
	Timeout time.Duration `yaml:"timeout" env:"QDRANT_TIMEOUT"`
}

// GeminiConfig holds embedding API settings.
type GeminiConfig struct {
	APIKey         string `yaml:"api_key" env:"GEMINI_API_KEY"`
	EmbeddingModel string `yaml:"embedding_model" env:"GEMINI_EMBEDDING_MODEL"`
	EmbeddingDim   int    `yaml:"embedding_dim" env:"GEMINI_EMBEDDING_DIM"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
	File   string `yaml:"file" env:"LOG_FILE"`
}

// LoadConfig builds the configuration from defaults, an optional yaml file
// and environment variable overrides, in that order.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func setDefaults(config *Config) {
	config.Database.Host = "postgres"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "academic123"
	config.Database.DBName = "academic_datamart"
	config.Database.SSLMode = "disable"
	config.Database.MaxConns = 10

	config.Qdrant.URL = "http://qdrant:6333"
	config.Qdrant.APIKey = "qdrant123"
	config.Qdrant.Timeout = 60 * time.Second

	config.Gemini.EmbeddingModel = "text-embedding-004"
	config.Gemini.EmbeddingDim = 768

	config.Logging.Level = "info"
	config.Logging.Format = "text"
}

func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}
	if config.Qdrant.URL == "" {
		return fmt.Errorf("qdrant url is required")
	}
	if config.Gemini.EmbeddingDim <= 0 {
		return fmt.Errorf("embedding dimension must be positive")
	}
	return nil
}

// GetPostgresConnectionString returns the postgres connection string.
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// MissingEnv reports which of the given environment variables are unset or
// empty. The trainer refuses to start when any credential is absent.
func MissingEnv(names ...string) []string {
	var missing []string
	for _, name := range names {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
