package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultAdminPassword = "admin"

type Config struct {
	Host          string
	DSN           string
	JWTSecret     string
	CORSOrigins   []string
	PageSize      int
	AdminUsername string
	AdminPassword string
}

// Load reads the .env file if there is one and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{
		Host:          getenv("SERVER_HOST", ":8080"),
		DSN:           os.Getenv("DB_DSN"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigins:   splitList(getenv("CORS_ORIGINS", "http://localhost:8080")),
		PageSize:      20,
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", defaultAdminPassword),
	}

	if raw := os.Getenv("PAGE_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			log.Printf("Ignoring invalid PAGE_SIZE %q\n", raw)
		} else {
			cfg.PageSize = size
		}
	}

	if cfg.UsesDefaultAdminPassword() {
		log.Printf("WARNING: %q is seeded with the default ADMIN_PASSWORD, set a real one\n", cfg.AdminUsername)
	}

	if cfg.DSN == "" {
		return nil, errors.New("DB_DSN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

// UsesDefaultAdminPassword reports whether the seeded administrator keeps the
// built-in password.
func (c *Config) UsesDefaultAdminPassword() bool {
	return c.AdminPassword == defaultAdminPassword
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
