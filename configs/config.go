package configs

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port string
	Host string
	Mode string
}

// UpstreamConfig points at the platform services that own all business logic
// and storage. The gateway only calls them.
type UpstreamConfig struct {
	CatalogURL     string
	CartURL        string
	OrderURL       string
	AccountURL     string
	TimeoutSeconds int
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers     []string
	EventsTopic string
}

type JWTConfig struct {
	SecretKey   string
	ExpiryHours int
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Host: getEnv("SERVER_HOST", "localhost"),
			Mode: getEnv("GIN_MODE", "debug"),
		},
		Upstream: UpstreamConfig{
			CatalogURL:     getEnv("CATALOG_SERVICE_URL", "http://localhost:8081"),
			CartURL:        getEnv("CART_SERVICE_URL", "http://localhost:8082"),
			OrderURL:       getEnv("ORDER_SERVICE_URL", "http://localhost:8083"),
			AccountURL:     getEnv("ACCOUNT_SERVICE_URL", "http://localhost:8084"),
			TimeoutSeconds: getEnvInt("UPSTREAM_TIMEOUT_SECONDS", 30),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Kafka: KafkaConfig{
			Brokers:     []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			EventsTopic: getEnv("KAFKA_EVENTS_TOPIC", "storefront.events"),
		},
		JWT: JWTConfig{
			SecretKey:   getEnv("JWT_SECRET", "your-secret-key"),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
