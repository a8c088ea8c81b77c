package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"book-management/internal/shared/middleware"
	"book-management/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Locale(c.Bundle),
	)

	router.GET("/health", healthHandler(c))
	c.AuthorHandler.RegisterRoutes(router.Group("/authors"))

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.Ping(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "UP"})
	}
}
