package main

import (
	"lucky-money/pkg/config"
	app "lucky-money/services/donation/internal/app"

	_ "lucky-money/services/donation/docs" // Swagger docs
)

// @title           Donation Service API
// @version         1.0
// @description     Donation catalog, pledges, transfer QR codes, goals, activity feed and admin reconciliation

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == config.DefaultJWTSecret || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
