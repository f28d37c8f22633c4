package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Fallback content endpoint, same default the frontend ships with.
const defaultWordPressAPIURL = "https://pff-815f04.ingress-florina.ewp.live/graphql"

var (
	PORT     string
	BASE_URL string

	WORDPRESS_API_URL string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string

	BUILD_VERSION string
	CORS_ORIGIN   string
)

// LoadEnv populates the package variables from the environment. Missing
// credentials are allowed: the endpoints that need them respond with a
// "not configured" error instead of the process refusing to start.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	BASE_URL = getEnv("BASE_URL", "http://localhost:3000")

	WORDPRESS_API_URL = getEnv("WORDPRESS_API_URL", defaultWordPressAPIURL)

	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")

	BUILD_VERSION = getEnv("BUILD_VERSION", "dev")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "")

	if STRIPE_SECRET_KEY == "" {
		log.Warn().Msg("STRIPE_SECRET_KEY not configured - checkout endpoints will be disabled")
	}
	if STRIPE_WEBHOOK_SECRET == "" {
		log.Warn().Msg("STRIPE_WEBHOOK_SECRET not configured - webhook endpoint will be disabled")
	}
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
