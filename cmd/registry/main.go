package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"book-management/internal/shared/middleware"
	"book-management/pkg/logger"
	"book-management/pkg/registry"
)

// staleAfter is three missed 30-second heartbeats.
const staleAfter = 90 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8761"
	}

	store := NewStore(staleAfter)
	router := SetupRouter(store)

	srv := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Info().Str("port", port).Msg("Service registry starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down registry")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Server forced to shutdown")
	}
}

func SetupRouter(store *Store) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	router.POST("/registry/heartbeat", func(c *gin.Context) {
		var hb registry.Heartbeat
		if err := c.ShouldBindJSON(&hb); err != nil || hb.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid heartbeat"})
			return
		}
		store.Record(hb)
		c.Status(http.StatusOK)
	})

	router.GET("/registry/services", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Snapshot())
	})

	return router
}
