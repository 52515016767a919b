package config

import (
	"fmt"
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// KafkaConfig holds Kafka connection settings.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Config is the process configuration, loaded from environment variables.
type Config struct {
	GRPCPort    int
	HTTPPort    int
	DB          DatabaseConfig
	Kafka       KafkaConfig
	ServiceName string
}

// Validate panics on missing required secrets.
func (c Config) Validate() {
	if c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required")
	}
}

// Load reads configuration from the environment with local-dev defaults.
func Load() Config {
	return Config{
		GRPCPort: getEnvInt("GRPC_PORT", 9090),
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		DB: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "loans"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "loans"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Kafka: KafkaConfig{
			Brokers: []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			Topic:   getEnv("KAFKA_TOPIC", "loan-events"),
		},
		ServiceName: "loan-service",
	}
}

// GRPCAddr returns the gRPC listen address.
func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

// HTTPAddr returns the HTTP listen address.
func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
