package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
		log.Warn().Msg("JWT_SECRET not set, using insecure development secret")
	}
	jwtSecret = []byte(secret)

	// Support a lightweight migrate command: `./pfbe migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		log.Info().Msg("migration and seeding completed")
		return
	}

	initDB()

	r := gin.Default()
	r.Use(corsMiddleware(corsOrigins()))
	r.Static("/public", uploadBaseDir())

	setupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
