package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"welcome-api/pkg/api"
	"welcome-api/pkg/server"
	"welcome-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 2 * time.Second

func main() {
	debug := flag.Bool("debug", false, "sets log level to debug")
	trace := flag.Bool("trace", false, "sets log level to trace")
	flag.Parse()

	utils.SetupLogger(*debug, *trace)
	utils.LoadEnvFile()

	gin.SetMode(utils.GetEnvOrDefault(gin.EnvGinMode, gin.ReleaseMode))

	port := utils.GetPort()
	srv := server.NewServer(port, api.NewRouter())
	if err := srv.Start(); err != nil {
		log.Fatal().Stack().Err(err).Int("port", port).Msg("Failed to start server")
	}

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-quit:
		log.Info().Msgf("Received signal: %s. Shutting down...", sig)
	case err := <-srv.Errors():
		log.Fatal().Stack().Err(err).Msg("Server stopped unexpectedly")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Stack().Err(err).Msg("Server Shutdown")
	}
	log.Info().Msg("Server exiting")
}
