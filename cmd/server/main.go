package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/csuiter/screen-time-rewards/internal/adapters/api"
	"github.com/csuiter/screen-time-rewards/internal/adapters/api/middleware"
	"github.com/csuiter/screen-time-rewards/internal/adapters/daemon"
	"github.com/csuiter/screen-time-rewards/internal/adapters/store"
	"github.com/csuiter/screen-time-rewards/internal/application/policy"
	"github.com/csuiter/screen-time-rewards/internal/config"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if cfg.APIToken == config.DefaultAPIToken {
		log.Warn().Msg("API_TOKEN not set, using the built-in default token")
	}

	// Initialize backend delegates
	daemonClient := daemon.NewClient(cfg.DaemonAddr, cfg.DaemonTimeout)
	storeClient := store.NewClient(cfg.RedisAddr)
	defer func() {
		if err := storeClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close store client")
		}
	}()

	// Initialize service and API handler
	policyService := policy.NewService(daemonClient, storeClient)
	handler := api.NewHandler(policyService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	// Request tagging and logging, then auth ahead of every route
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.AuthMiddleware(cfg.APIToken))

	// Register routes
	handler.RegisterRoutes(r)

	// Start server
	log.Info().Msgf("Starting screen-time bridge on port %s", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
