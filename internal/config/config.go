package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Only the values the service cannot run without
// are enforced; everything else has a sensible default so a bare
// `go run ./cmd/server` works against a local stack.
type Config struct {
	Env            string        // application environment (dev/test/prod)
	Port           string        // HTTP port to listen on
	APIBaseURL     string        // base URL of the upstream workspace API
	APITimeout     time.Duration // per-request timeout for gateway calls
	DBUser         string        // MySQL username for the local fallback store
	DBPass         string        // MySQL password (optional)
	DBHost         string        // MySQL host
	DBPort         string        // MySQL port
	DBName         string        // MySQL database name
	SessionSecret  string        // secret used to sign session cookies
	SessionTTLMin  int           // session cookie time-to-live in minutes
	LocalTTLMin    int           // TTL for session-scoped fallback records
	BcryptCost     int           // bcrypt cost for the demo account directory
	CookieSecure   bool          // mark the session cookie Secure
	DashboardPath  string        // where non-admins land when hitting admin routes
}

// Load reads configuration from the environment. A .env file is honored
// when present (development convenience); absence is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:           getenv("APP_ENV", "dev"),
		Port:          getenv("APP_PORT", "8080"),
		APIBaseURL:    must("API_BASE_URL"),
		APITimeout:    envDur("API_TIMEOUT", 8*time.Second),
		DBUser:        getenv("DB_USER", "projectdesk"),
		DBPass:        os.Getenv("DB_PASS"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "3306"),
		DBName:        getenv("DB_NAME", "projectdesk"),
		SessionSecret: must("SESSION_SECRET"),
		SessionTTLMin: envInt("SESSION_TTL_MIN", 12*60),
		LocalTTLMin:   envInt("LOCAL_RECORD_TTL_MIN", 8*60),
		BcryptCost:    envInt("BCRYPT_COST", 10),
		CookieSecure:  envBool("COOKIE_SECURE", false),
		DashboardPath: getenv("DASHBOARD_PATH", "/v1/dashboard"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return def
}

func envBool(key string, def bool) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "True", "yes", "on":
		return true
	case "0", "false", "FALSE", "False", "no", "off":
		return false
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	return def
}
