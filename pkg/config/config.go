package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultJWTSecret = "your-secret-key-change-in-production"

type Config struct {
	AppEnv string

	// Server
	ServerPort     string
	AuthServerPort string
	CORSOrigins    []string
	SignInPath     string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// RabbitMQ
	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string

	// JWT
	JWTSecret string
	JWTTTL    time.Duration

	// Google sign-in
	GoogleClientID string
	GoogleIssuer   string

	// Bank transfer
	BankCode        string
	BankAccountNo   string
	BankAccountName string
	QRTemplate      string
	TransferMemoTag string

	DonationRateLimit int
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		AppEnv: getEnv("APP_ENV", "development"),

		ServerPort:     getEnv("SERVER_PORT", "8080"),
		AuthServerPort: getEnv("AUTH_SERVER_PORT", "8081"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
		SignInPath:     getEnv("SIGN_IN_PATH", "/auth/signin"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "luckymoney"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		RabbitMQHost:     getEnv("RABBITMQ_HOST", ""),
		RabbitMQPort:     getEnv("RABBITMQ_PORT", "5672"),
		RabbitMQUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPassword: getEnv("RABBITMQ_PASSWORD", "guest"),

		JWTSecret: getEnv("JWT_SECRET", DefaultJWTSecret),
		JWTTTL:    getEnvDuration("JWT_TTL", 30*24*time.Hour),

		GoogleClientID: getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleIssuer:   getEnv("GOOGLE_ISSUER", "https://accounts.google.com"),

		BankCode:        getEnv("BANK_CODE", "MB"),
		BankAccountNo:   getEnv("BANK_ACCOUNT_NO", ""),
		BankAccountName: getEnv("BANK_ACCOUNT_NAME", "TRUN COMMUNITY"),
		QRTemplate:      getEnv("QR_TEMPLATE", "compact"),
		TransferMemoTag: getEnv("TRANSFER_MEMO_TAG", "TRUN"),

		DonationRateLimit: getEnvInt("DONATION_RATE_LIMIT", 10),
	}

	return config, nil
}

// IsDevelopment reports whether the service runs with APP_ENV=development.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
