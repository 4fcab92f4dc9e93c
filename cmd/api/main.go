package main

import (
	"os"

	"github.com/ravenlog/ravenlog/internal/pkg/logger"
	"github.com/ravenlog/ravenlog/internal/server"
)

// @title RavenLog API
// @version 1.0
// @description Unit management backend for a simulated aviation organization

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
