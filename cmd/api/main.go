package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ArowuTest/plate-spin-backend/api/routes"
	"github.com/ArowuTest/plate-spin-backend/internal/config"
	"github.com/ArowuTest/plate-spin-backend/internal/handlers"
	"github.com/ArowuTest/plate-spin-backend/internal/repositories"
	mongorepo "github.com/ArowuTest/plate-spin-backend/internal/repositories/mongodb"
	"github.com/ArowuTest/plate-spin-backend/internal/services"
	mongodb "github.com/ArowuTest/plate-spin-backend/pkg/mongodb"
	"github.com/gin-gonic/gin"
	"github.com/google/logger"
)

func main() {
	envErr := config.LoadDotEnv()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	defer logger.Init("plate-spin-backend", cfg.Verbose(), false, io.Discard).Close()
	if envErr != nil {
		logger.Info(".env file not found, using environment variables")
	}
	gin.SetMode(cfg.Server.Mode)

	mongoClient, err := mongodb.NewClient(context.Background(), cfg.MongoDB.URI)
	if err != nil {
		logger.Fatalf("Failed to create MongoDB client: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			logger.Errorf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	// An unreachable store is logged, not fatal; requests fail with 500 until it comes back
	pingCtx, cancelPing := context.WithTimeout(context.Background(), cfg.MongoDB.Timeout)
	if err := mongoClient.Ping(pingCtx); err != nil {
		logger.Errorf("Error connecting to MongoDB: %v", err)
	} else {
		logger.Infof("Connected to MongoDB database %s", cfg.MongoDB.Database)
	}
	cancelPing()

	db := mongoClient.Database(cfg.MongoDB.Database)

	var participantRepo repositories.ParticipantRepository = mongorepo.NewParticipantRepository(db, cfg.MongoDB.Collection, cfg.MongoDB.Timeout)
	if err := participantRepo.EnsureIndexes(context.Background()); err != nil {
		logger.Warningf("Could not ensure participant indexes: %v", err)
	}

	participantService := services.NewParticipantService(participantRepo, cfg.Campaign)

	handlerDeps := routes.HandlerDependencies{
		ParticipantHandler: handlers.NewParticipantHandler(participantService),
		HealthHandler:      handlers.NewHealthHandler(mongoClient, cfg.MongoDB.Timeout),
	}
	router := routes.SetupRouter(handlerDeps)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Infof("Server starting on port %s", cfg.Server.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exiting")
}
