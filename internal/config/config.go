package config

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	MongoURI     string
	MongoDB      string
	SessionKey   []byte
	CSRFKey      []byte
	CookieDomain string
	CookieSecure bool

	// Two independent expiry clocks: the cookie lives for CookieMaxAge
	// while the application-level session deadline is SessionTTL. A
	// cookie can outlive its session; the guard only honors the latter.
	SessionTTL   time.Duration
	CookieMaxAge time.Duration

	BodyLimitBytes int64
	LoginRPS       float64
	LoginBurst     int
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{
		Port:           getEnv("PORT", "3000"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "foodify"),
		CookieDomain:   getEnv("COOKIE_DOMAIN", ""),
		CookieSecure:   getEnv("COOKIE_SECURE", "false") == "true",
		SessionTTL:     getDuration("SESSION_TTL", time.Hour),
		CookieMaxAge:   getDuration("COOKIE_MAX_AGE", 24*time.Hour),
		BodyLimitBytes: getInt64("BODY_LIMIT_BYTES", 500<<20),
		LoginRPS:       getFloat("LOGIN_RPS", 1),
		LoginBurst:     getIntEnv("LOGIN_BURST", 5),
	}

	cfg.SessionKey = keyFromEnv("SESSION_KEY")
	cfg.CSRFKey = keyFromEnv("CSRF_KEY")

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", os.Getenv("PORT"))
		cfg.Port = "3000"
	}

	return cfg, nil
}

// keyFromEnv decodes a base64 key of at least 32 bytes, or generates a
// throwaway dev key with a warning. Generated keys change on restart,
// which invalidates existing sessions and CSRF tokens.
func keyFromEnv(name string) []byte {
	raw := os.Getenv(name)
	if raw == "" {
		slog.Warn("key not set, generating a random development key", "env", name)
		return randomBytes(32)
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(decoded) < 32 {
		slog.Warn("key invalid or shorter than 32 bytes, generating a random development key", "env", name)
		return randomBytes(32)
	}
	return decoded
}

func randomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		slog.Error("Failed to read random bytes", "error", err)
		os.Exit(1)
	}
	return b
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration, using default", "env", key, "value", v)
		return fallback
	}
	return d
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		slog.Warn("invalid integer, using default", "env", key, "value", v)
		return fallback
	}
	return n
}

func getIntEnv(key string, fallback int) int {
	return int(getInt64(key, int64(fallback)))
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number, using default", "env", key, "value", v)
		return fallback
	}
	return f
}
