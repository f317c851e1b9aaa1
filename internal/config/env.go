package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	databaseURL := os.Getenv("DATABASE_URL")
	redisURL := os.Getenv("REDIS_URL")
	metaAccessToken := os.Getenv("META_ACCESS_TOKEN")
	phoneNumberID := os.Getenv("WHATSAPP_PHONE_NUMBER_ID")
	jwtSecret := os.Getenv("JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if metaAccessToken == "" {
		return nil, fmt.Errorf("META_ACCESS_TOKEN environment variable is required")
	}

	if phoneNumberID == "" {
		return nil, fmt.Errorf("WHATSAPP_PHONE_NUMBER_ID environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = "8080"
	}

	// account-wide human takeover timeout, 0 means takeovers never expire
	timeoutHours := 0
	if raw := os.Getenv("HUMAN_MODE_TIMEOUT_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("HUMAN_MODE_TIMEOUT_HOURS must be a non-negative integer")
		}
		timeoutHours = parsed
	}

	return &Config{
		DatabaseURL:           databaseURL,
		RedisURL:              redisURL,
		MetaAccessToken:       metaAccessToken,
		WhatsAppPhoneNumberID: phoneNumberID,
		JWTSecret:             jwtSecret,
		Environment:           environment,
		Port:                  port,
		HumanModeTimeoutHours: timeoutHours,
	}, nil
}
