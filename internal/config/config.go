// Package config reads runtime settings from the environment. A .env file
// in the working directory is loaded first when present.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting.
type Config struct {
	Environment     string
	APIBaseURL      string
	GraphQLEndpoint string
	Token           string // from ZOHAR_TOKEN; the token file is read by the CLI

	RequestTimeout time.Duration
	PageSize       int

	MaxUploadSize int64
	UploadFolder  string

	LogFile  string
	LogLevel string
}

// Load reads .env (if any) and the environment.
func Load() *Config {
	_ = godotenv.Load() // a missing .env is fine

	base := strings.TrimRight(getEnv("ZOHAR_API_URL", "http://localhost:4000"), "/")
	return &Config{
		Environment:     getEnv("ZOHAR_ENV", "production"),
		APIBaseURL:      base,
		GraphQLEndpoint: getEnv("ZOHAR_GRAPHQL_ENDPOINT", base+"/graphql"),
		Token:           strings.TrimSpace(os.Getenv("ZOHAR_TOKEN")),

		RequestTimeout: time.Duration(getEnvInt("ZOHAR_TIMEOUT_SEC", 30)) * time.Second,
		PageSize:       clamp(getEnvInt("ZOHAR_PAGE_SIZE", 100), 1, 100),

		MaxUploadSize: int64(getEnvInt("ZOHAR_MAX_UPLOAD_MB", 10)) * 1024 * 1024,
		UploadFolder:  getEnv("ZOHAR_UPLOAD_FOLDER", "media"),

		LogFile:  getEnv("ZOHAR_LOG_FILE", defaultLogFile()),
		LogLevel: getEnv("ZOHAR_LOG_LEVEL", ""),
	}
}

// Dir is the per-user state directory, ~/.zohar.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".zohar"
	}
	return filepath.Join(home, ".zohar")
}

// TokenPath is where the API token is stored.
func TokenPath() string {
	return filepath.Join(Dir(), "token")
}

func defaultLogFile() string {
	return filepath.Join(Dir(), "zohar.log")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}
