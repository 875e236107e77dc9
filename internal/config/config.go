package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config carries everything main needs to wire the app. It is built
// once at startup and handed down; nothing else reads the environment.
type Config struct {
	Port          string
	Env           string
	DatabaseURL   string
	MongoURI      string
	MongoDBName   string
	DataDir       string
	AdminPassword string
}

// Load reads .env when present, then the environment, falling back to
// development defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment")
	}
	return Config{
		Port:          envOr("PORT", "8080"),
		Env:           envOr("APP_ENV", "development"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MongoURI:      os.Getenv("MONGO_URI"),
		MongoDBName:   envOr("MONGO_DB", "hany"),
		DataDir:       envOr("DATA_DIR", "data"),
		AdminPassword: envOr("ADMIN_PASSWORD", "admin1234"),
	}
}

// IsProd reports whether the app runs in production mode.
func (c Config) IsProd() bool {
	return c.Env == "production"
}

// ListingsFile, UsersFile and ContactFile are the flat-file store paths
// under DataDir.
func (c Config) ListingsFile() string { return filepath.Join(c.DataDir, "listings.json") }
func (c Config) UsersFile() string    { return filepath.Join(c.DataDir, "users.json") }
func (c Config) ContactFile() string  { return filepath.Join(c.DataDir, "contact-info.json") }

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
