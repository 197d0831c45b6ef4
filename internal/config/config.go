package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Price source
	CoinGeckoBaseURL   string
	CoinGeckoAPIKey    string
	PriceSourceTimeout time.Duration

	// Portfolio rules
	StartingCash  decimal.Decimal
	ReferralBonus int64

	// Maintenance endpoints
	AdminAPIKey string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "coinfolio"),
		DBPassword: getEnv("DB_PASSWORD", "coinfolio"),
		DBName:     getEnv("DB_NAME", "coinfolio"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		// Price source
		CoinGeckoBaseURL: getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
		CoinGeckoAPIKey:  getEnv("COINGECKO_API_KEY", ""),

		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
	}

	config.JWTExpirationDur = getDuration("JWT_EXPIRES_IN", 24*time.Hour)
	config.PriceSourceTimeout = getDuration("PRICE_SOURCE_TIMEOUT", 10*time.Second)

	cashStr := getEnv("STARTING_CASH", "100000.00")
	cash, err := decimal.NewFromString(cashStr)
	if err != nil || cash.IsNegative() {
		log.Printf("Warning: invalid STARTING_CASH value '%s', falling back to 100000.00\n", cashStr)
		cash = decimal.RequireFromString("100000.00")
	}
	config.StartingCash = cash

	bonusStr := getEnv("REFERRAL_BONUS", "100")
	bonus, err := decimal.NewFromString(bonusStr)
	if err != nil || !bonus.IsInteger() || bonus.IsNegative() {
		log.Printf("Warning: invalid REFERRAL_BONUS value '%s', falling back to 100\n", bonusStr)
		bonus = decimal.NewFromInt(100)
	}
	config.ReferralBonus = bonus.IntPart()

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s value '%s', falling back to %s\n", key, raw, defaultValue)
		return defaultValue
	}
	return d
}
