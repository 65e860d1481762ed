package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBackendURL is the local development origin of the content API
	DefaultBackendURL = "http://localhost:8000"
	// DefaultSplineScene is the 3D scene embedded behind the hero
	DefaultSplineScene = "https://prod.spline.design/41MGRk-UDPKO-l6W/scene.splinecode"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	// Backend content API
	BackendURL     string
	BackendTimeout time.Duration
	// Other
	AllowedOrigins   []string
	SplineSceneURL   string
	ContactRateLimit int // Contact submissions allowed per minute per IP
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// VITE_BACKEND_URL is accepted so the frontend and the server can share one .env
	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = getEnv("VITE_BACKEND_URL", DefaultBackendURL)
	}

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		AppURL:           getEnv("APP_URL", "http://localhost:8080"),
		BackendURL:       strings.TrimRight(backendURL, "/"),
		BackendTimeout:   getEnvDuration("BACKEND_TIMEOUT", 10*time.Second),
		AllowedOrigins:   strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		SplineSceneURL:   getEnv("SPLINE_SCENE_URL", DefaultSplineScene),
		ContactRateLimit: getEnvInt("CONTACT_RATE_LIMIT", 10),
	}
}

// Validate checks values that would otherwise only fail on the first request
func (c *Config) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid BACKEND_URL %q: %w", c.BackendURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid BACKEND_URL %q: scheme must be http or https", c.BackendURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid BACKEND_URL %q: missing host", c.BackendURL)
	}
	if c.BackendTimeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	if c.ContactRateLimit <= 0 {
		return fmt.Errorf("CONTACT_RATE_LIMIT must be positive")
	}
	return nil
}

// IsProduction reports whether the server runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("[WARNING] Invalid integer for %s: %q, using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}

// getEnvDuration accepts Go durations ("5s") or a bare number of seconds
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("[WARNING] Invalid duration for %s: %q, using %s", key, value, defaultValue)
	return defaultValue
}
