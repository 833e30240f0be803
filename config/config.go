// package config loads all runtime configuration from the environment once,
// at startup. Every client constructor takes the values it needs explicitly
// so tests can inject fakes.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every credential and knob the bot reads from the environment.
type Config struct {
	// Postgres
	PostgresURL string

	// OpenAI-compatible chat completion endpoint
	OpenAIKey   string
	OpenAIModel string

	// Twilio WhatsApp
	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string // e.g. "whatsapp:+14155238886"
	OwnerWhatsAppNumber  string // recipient of the daily pushes

	// Sports data providers. Either, both, or neither key may be set;
	// a missing key disables that sport.
	FootballAPIKey    string
	FootballAPIHost   string
	BasketballAPIKey  string
	BasketballAPIHost string

	// OpenWeather
	WeatherAPIKey string

	// Persona memory file and content bank
	MemoryFile  string
	ContentFile string

	// HTTP
	ListenAddr string
	LogLevel   string
}

// FromEnv reads the configuration from the environment. A .env file in the
// working directory is loaded first when present, matching the deployment
// setup on Render.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		PostgresURL:          os.Getenv("DATABASE_URL"),
		OpenAIKey:            os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		OwnerWhatsAppNumber:  os.Getenv("MY_WHATSAPP_NUMBER"),
		FootballAPIKey:       os.Getenv("RAPIDAPI_KEY_FOOT"),
		FootballAPIHost:      getEnv("RAPIDAPI_FOOT_HOST", "api-football-v1.p.rapidapi.com"),
		BasketballAPIKey:     os.Getenv("RAPIDAPI_KEY_BASKET"),
		BasketballAPIHost:    getEnv("RAPIDAPI_BASKET_HOST", "api-basketball.p.rapidapi.com"),
		WeatherAPIKey:        os.Getenv("OPENWEATHER_API_KEY"),
		MemoryFile:           getEnv("MEMORY_FILE", "memoire_mohamed_lanai.json"),
		ContentFile:          getEnv("CONTENT_FILE", "contenu_messages.json"),
		ListenAddr:           ":" + getEnv("PORT", "5000"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}
}

// ValidateWebhook checks the values the webhook server cannot run without.
func (c Config) ValidateWebhook() error {
	if c.PostgresURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.TwilioAccountSID == "" || c.TwilioAuthToken == "" || c.TwilioWhatsAppNumber == "" {
		return fmt.Errorf("twilio configuration is incomplete")
	}
	return nil
}

// getEnv gets an environment variable with a default fallback
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer environment variable with a default fallback
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
