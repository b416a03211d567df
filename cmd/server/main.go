package main

import (
	"songhub/internal/app"
	"songhub/pkg/config"
)

// @title SongHub API
// @version 1.0
// @description Music sharing platform: creators upload songs, listeners like them and build playlists.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == "your-secret-key-change-in-production" {
		println("WARNING: using default JWT secret, set JWT_SECRET in production")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic("Failed to initialize application: " + err.Error())
	}

	if err := application.Run(); err != nil {
		panic("Failed to run application: " + err.Error())
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic("Failed to shutdown gracefully: " + err.Error())
	}
}
