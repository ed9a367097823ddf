package config

import "os"

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	// DefaultAddress backs commands issued without an explicit address.
	// It may be empty; only the default-address path needs it.
	DefaultAddress string
	Timezone       string
	GeocoderURL    string
	SunsetAPIURL   string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./sunset.db"),
		Port:               getEnv("PORT", "3000"),
		DefaultAddress:     getEnv("DEFAULT_ADDRESS", ""),
		Timezone:           getEnv("TIMEZONE", "America/Los_Angeles"),
		GeocoderURL:        getEnv("GEOCODER_URL", ""),
		SunsetAPIURL:       getEnv("SUNSET_API_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
