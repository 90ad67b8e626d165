package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

var (
	jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)
	logger    zerolog.Logger
)

func main() {
	// Auto-load ./.env if present before reading vars; existing env wins.
	_ = godotenv.Load()

	logger = newLogger(os.Getenv("LOG_LEVEL"))

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
		logger.Warn().Msg("JWT_SECRET not set, using insecure development secret")
	}
	jwtSecret = []byte(secret)

	// Support a lightweight migrate command: `./finerp migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		fmt.Println("migration and seeding completed")
		return
	}

	initDB()

	r := gin.Default()

	registerValidators()
	setupRoutes(r)

	addr := ":" + envOr("PORT", "8081")
	logger.Info().Str("addr", addr).Msg("server starting")
	if err := r.Run(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
