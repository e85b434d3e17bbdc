package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Search   SearchConfig
	Download DownloadConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type SearchConfig struct {
	// BinaryPath is the yt-dlp executable used for keyword search.
	BinaryPath string
	// MaxResults caps the number of raw hits requested from the provider.
	MaxResults int
}

type DownloadConfig struct {
	// BinaryPath is the yt-dlp executable used for audio extraction.
	BinaryPath string
	// ScratchDir holds the one-shot MP3 artifacts between transcode and
	// response streaming. Files never outlive a single request.
	ScratchDir string
}

type CORSConfig struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int
	Profile          string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.Host = getEnv("SERVER_HOST", "0.0.0.0")

	// Search configuration
	cfg.Search.BinaryPath = getEnv("YTDLP_PATH", "yt-dlp")
	cfg.Search.MaxResults = getEnvInt("SEARCH_MAX_RESULTS", 10)
	if cfg.Search.MaxResults <= 0 {
		return nil, fmt.Errorf("invalid SEARCH_MAX_RESULTS: must be positive")
	}

	// Download configuration
	cfg.Download.BinaryPath = getEnv("YTDLP_PATH", "yt-dlp")
	cfg.Download.ScratchDir = getEnv("SCRATCH_DIR", os.TempDir())

	// CORS configuration
	cfg.CORS = loadCORSConfig()

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
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

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvStringSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(strings.TrimSpace(value), ",")
	}
	return defaultValue
}

// loadCORSConfig loads CORS configuration based on profile or custom settings
func loadCORSConfig() CORSConfig {
	profile := getEnv("CORS_PROFILE", "custom")

	switch profile {
	case "development":
		return getDevelopmentCORSConfig()
	case "production":
		return getProductionCORSConfig()
	default:
		return getCustomCORSConfig()
	}
}

// getDevelopmentCORSConfig returns permissive CORS settings for development
func getDevelopmentCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled: getEnvBool("CORS_ENABLED", true),
		AllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:8080",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:8080",
		}),
		AllowedMethods: getEnvStringSlice("CORS_ALLOWED_METHODS", []string{
			"GET", "OPTIONS",
		}),
		AllowedHeaders: getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{
			"Origin", "Content-Type", "Accept", "X-Correlation-ID",
		}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", true),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 86400),
		Profile:          "development",
	}
}

// getProductionCORSConfig returns secure CORS settings for production
func getProductionCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled:        getEnvBool("CORS_ENABLED", false),
		AllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{}),
		AllowedMethods: getEnvStringSlice("CORS_ALLOWED_METHODS", []string{
			"GET", "OPTIONS",
		}),
		AllowedHeaders: getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{
			"Origin", "Content-Type", "Accept",
		}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
		Profile:          "production",
	}
}

// getCustomCORSConfig returns CORS settings from individual environment variables
func getCustomCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled: getEnvBool("CORS_ENABLED", false),
		AllowedOrigins: getEnvStringSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:3000",
		}),
		AllowedMethods: getEnvStringSlice("CORS_ALLOWED_METHODS", []string{
			"GET", "OPTIONS",
		}),
		AllowedHeaders: getEnvStringSlice("CORS_ALLOWED_HEADERS", []string{
			"Origin", "Content-Type", "Accept",
		}),
		AllowCredentials: getEnvBool("CORS_ALLOW_CREDENTIALS", false),
		MaxAge:           getEnvInt("CORS_MAX_AGE", 3600),
		Profile:          "custom",
	}
}
