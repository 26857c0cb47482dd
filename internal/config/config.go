package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Addr          string
	SessionFile   string
	AdminPhone    string
	AdminPassword string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load(log *zap.Logger) Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		Addr:          getenv("ADMIN_SERVICE_ADDR", ":8080"),
		SessionFile:   getenv("SESSION_FILE", ".tazzabazzar/session.json"),
		AdminPhone:    getenv("ADMIN_PHONE", "9876543210"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
	}
	log.Info("config loaded",
		zap.String("ADMIN_SERVICE_ADDR", cfg.Addr),
		zap.String("SESSION_FILE", cfg.SessionFile),
		zap.String("ADMIN_PHONE", cfg.AdminPhone),
	)
	return cfg
}
