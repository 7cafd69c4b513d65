package main

import (
	"context"
	"os"

	"github.com/jazbaa/showcase/internal/pkg/logger"
	"github.com/jazbaa/showcase/internal/server"
)

// @title Startup Showcase API
// @version 1.0
// @description Startup showcase for investors, colleges and event admins: catalog, interest tracking, comments and invite registration.

// @contact.name API Support
// @contact.email support@showcase.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer access token returned by /auth/login

func main() {
	srv, err := server.NewServer(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
