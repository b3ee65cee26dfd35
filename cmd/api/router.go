package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"antiquify-backend/internal/shared/middleware"
	"antiquify-backend/pkg/container"
)

// SetupRouter wires the HTTP surface. Paths are the catalog's published
// contract and must not change shape.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	router.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(router, c)
	setupArtifactRoutes(router, c)

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	router.POST("/jwt", c.AuthHandler.IssueToken)
	router.POST("/logout", c.AuthHandler.Logout)
}

// ========================================
// ARTIFACT ROUTES
// ========================================
func setupArtifactRoutes(router *gin.Engine, c *container.Container) {
	authRequired := middleware.Auth(c.JWTManager)
	ownerMatch := middleware.RequireOwner()

	artifacts := router.Group("/artifacts")
	{
		// Public
		artifacts.GET("", c.ArtifactHandler.ListArtifacts)
		artifacts.GET("/top", c.ArtifactHandler.ListTopArtifacts)
		artifacts.GET("/details/:id", c.ArtifactHandler.GetArtifactDetails)
		artifacts.POST("", c.ArtifactHandler.CreateArtifact)
		artifacts.PUT("/update/:id", c.ArtifactHandler.UpdateArtifact)
		artifacts.PUT("/:id/like", c.ArtifactHandler.ToggleLike)
		artifacts.DELETE("/:id", c.ArtifactHandler.DeleteArtifact)

		// Owner-scoped
		artifacts.GET("/liked", authRequired, ownerMatch, c.ArtifactHandler.ListLikedArtifacts)
	}

	router.GET("/myArtifacts", authRequired, ownerMatch, c.ArtifactHandler.ListMyArtifacts)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Client == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error: " + err.Error()
			}
		}

		health["services"] = gin.H{"database": dbStatus}

		statusCode := 200
		if dbStatus != "ok" {
			health["status"] = "degraded"
			statusCode = 503
		}

		c.JSON(statusCode, health)
	}
}
