package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port            int
	LogLevel        string
	OTELEndpoint    string
	OTELServiceName string
	ShutdownTimeout time.Duration

	// DefaultCountry используется, если в профиле не указана страна
	DefaultCountry string

	// Границы проверки входных данных
	MaxPurchasePrice   float64
	MaxYears           int
	MaxAnnualMileage   float64
	MaxRate            float64
	MaxLoanTermYears   int
	MaxLeaseTermMonths int
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 8000),
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "tco-calculator"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		DefaultCountry: getEnvString("DEFAULT_COUNTRY", "sweden"),

		MaxPurchasePrice:   getEnvFloat("MAX_PURCHASE_PRICE", 1e9),
		MaxYears:           getEnvInt("MAX_YEARS", 5),
		MaxAnnualMileage:   getEnvFloat("MAX_ANNUAL_MILEAGE", 200000),
		MaxRate:            getEnvFloat("MAX_RATE", 100),
		MaxLoanTermYears:   getEnvInt("MAX_LOAN_TERM_YEARS", 10),
		MaxLeaseTermMonths: getEnvInt("MAX_LEASE_TERM_MONTHS", 120),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
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

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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
