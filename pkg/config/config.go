package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// reCAPTCHA v3 verification. An empty secret disables server-side
	// verification entirely (submissions pass through unverified).
	RecaptchaSecret         string
	RecaptchaScoreThreshold float64

	// Resend email notifications. Both the API key and the recipient must be
	// set for notifications to be attempted.
	ResendAPIKey     string
	ContactRecipient string
	ContactFrom      string

	// OpenAI chat assistant
	OpenAIAPIKey string
	OpenAIModel  string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	threshold := 0.5
	if raw := os.Getenv("RECAPTCHA_SCORE_THRESHOLD"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			threshold = parsed
		}
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		DatabaseURL:             getEnv("DATABASE_URL", ""),
		RecaptchaSecret:         getEnv("RECAPTCHA_SECRET_KEY", ""),
		RecaptchaScoreThreshold: threshold,
		ResendAPIKey:            getEnv("RESEND_API_KEY", ""),
		ContactRecipient:        getEnv("CONTACT_RECIPIENT", ""),
		ContactFrom:             getEnv("CONTACT_FROM", "Portfolio <onboarding@resend.dev>"),
		OpenAIAPIKey:            getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:             getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
