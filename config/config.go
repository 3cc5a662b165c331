package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application-level configuration
type Config struct {
	// ATSB site
	BaseURL    string
	ListingURL string

	// Pipeline
	ReportLimit    int
	HTTPTimeoutSec int
	RateLimitDelay int // milliseconds between detail-page requests

	// Output
	DataDir   string
	OutputDir string
}

// Load reads configuration from environment variables (with optional .env
// bootstrap) or falls back to defaults
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	base := getEnv("ATSB_BASE_URL", "https://www.atsb.gov.au")
	return &Config{
		BaseURL:        base,
		ListingURL:     getEnv("ATSB_LISTING_URL", base+"/aviation-investigation-reports"),
		ReportLimit:    getEnvInt("REPORT_LIMIT", 10),
		HTTPTimeoutSec: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),
		RateLimitDelay: getEnvInt("RATE_LIMIT_DELAY_MS", 500),
		DataDir:        getEnv("DATA_DIR", "data"),
		OutputDir:      getEnv("OUTPUT_DIR", "outputs"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
