package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	App    AppConfig
	Auth   AuthConfig
	Gemini GeminiConfig
	Fetch  FetchConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type AuthConfig struct {
	JWTAccessSecret string
}

type GeminiConfig struct {
	APIKey       string
	FastModel    string
	QualityModel string
}

type FetchConfig struct {
	ScrapingBeeAPIKey string
	ReaderBaseURL     string
	HeadlessEnabled   bool
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Auth = AuthConfig{
		JWTAccessSecret: req("JWT_ACCESS_SECRET"),
	}

	cfg.Gemini = GeminiConfig{
		APIKey:       req("GEMINI_API_KEY"),
		FastModel:    opt("GEMINI_FAST_MODEL"),
		QualityModel: opt("GEMINI_QUALITY_MODEL"),
	}

	cfg.Fetch = FetchConfig{
		ScrapingBeeAPIKey: opt("SCRAPINGBEE_API_KEY"),
		ReaderBaseURL:     opt("READER_BASE_URL"),
		HeadlessEnabled:   parseBool(opt("FETCH_HEADLESS_ENABLED")),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
