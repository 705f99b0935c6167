package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	MongoDB  MongoConfig
	Media    MediaConfig
	JWT      JWTConfig
	Chat     ChatConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
}

// DatabaseConfig is the MySQL profile store connection.
type DatabaseConfig struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DatabaseName string
	MaxOpenConns int
	MaxIdleConns int
}

// MongoConfig is the GridFS avatar storage connection.
type MongoConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Bucket   string
}

type MediaConfig struct {
	// BaseURL prefixes stored object paths to form their public URLs.
	BaseURL string
}

type JWTConfig struct {
	Secret   string
	TTLHours int
}

type ChatConfig struct {
	// ReplyDelayMillis is the base unit between delivery stages.
	ReplyDelayMillis int
}

type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
}

// LoadConfig reads configuration from the environment, with .env support for
// local development. Every value has a workable default.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host:         getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvOrDefault("SERVER_PORT", "7010"),
			ReadTimeout:  getEnvIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvIntOrDefault("SERVER_WRITE_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "cosmolink"),
			Password:     getEnvOrDefault("DB_PASSWORD", "cosmolink123"),
			DatabaseName: getEnvOrDefault("DB_NAME", "cosmolink"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoConfig{
			Host:     getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:     getEnvOrDefault("MONGO_PORT", "27017"),
			Username: getEnvOrDefault("MONGO_USER", ""),
			Password: getEnvOrDefault("MONGO_PASSWORD", ""),
			Database: getEnvOrDefault("MONGO_DB", "cosmolink"),
			Bucket:   getEnvOrDefault("MONGO_BUCKET", "avatars"),
		},
		Media: MediaConfig{
			BaseURL: getEnvOrDefault("MEDIA_BASE_URL", "http://localhost:7010/media/"),
		},
		JWT: JWTConfig{
			Secret:   getEnvOrDefault("JWT_SECRET", "dev-only-secret"),
			TTLHours: getEnvIntOrDefault("JWT_TTL_HOURS", 24),
		},
		Chat: ChatConfig{
			ReplyDelayMillis: getEnvIntOrDefault("CHAT_REPLY_DELAY_MS", 1000),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}
}

// DSN builds the MySQL connection string from the database settings.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// MongoURI builds the MongoDB connection string, with credentials when set.
func (cfg *Config) MongoURI() string {
	if cfg.MongoDB.Username != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s",
			cfg.MongoDB.Username, cfg.MongoDB.Password, cfg.MongoDB.Host, cfg.MongoDB.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDB.Host, cfg.MongoDB.Port)
}

// ReplyDelay returns the engine's base stage delay.
func (cfg *Config) ReplyDelay() time.Duration {
	return time.Duration(cfg.Chat.ReplyDelayMillis) * time.Millisecond
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
