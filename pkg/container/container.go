package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"antiquify-backend/internal/config"
	"antiquify-backend/internal/infrastructure/database"
	"antiquify-backend/pkg/jwt"

	artifactHandler "antiquify-backend/internal/domains/artifact/handler"
	artifactRepo "antiquify-backend/internal/domains/artifact/repository"
	artifactService "antiquify-backend/internal/domains/artifact/service"
	authHandler "antiquify-backend/internal/domains/auth/handler"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application and is the root of
// the dependency graph. All members are singletons for the app lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.MongoDB
	JWTManager *jwt.Manager

	// Repository layer
	ArtifactRepo artifactRepo.ArtifactRepository

	// Service layer
	ArtifactService artifactService.ArtifactService

	// Handler layer
	ArtifactHandler *artifactHandler.ArtifactHandler
	AuthHandler     *authHandler.AuthHandler
}

// NewContainer builds the whole dependency graph in order:
// config → database → jwt → repositories → services → handlers.
// Any failure aborts startup.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: CONNECT TO MONGODB
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewMongoDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: JWT MANAGER
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// STEP 4: REPOSITORIES
	// ========================================
	c.ArtifactRepo = artifactRepo.NewMongoArtifactRepository(db.Database)

	// ========================================
	// STEP 5: SERVICES
	// ========================================
	c.ArtifactService = artifactService.NewArtifactService(c.ArtifactRepo)

	// ========================================
	// STEP 6: HANDLERS
	// ========================================
	c.ArtifactHandler = artifactHandler.NewArtifactHandler(c.ArtifactService)
	c.AuthHandler = authHandler.NewAuthHandler(c.JWTManager, cfg.App.Environment)

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup releases resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := c.DB.Close(ctx); err != nil {
			log.Printf("⚠️  Failed to close database: %v", err)
		} else {
			log.Println("✅ Database connections closed")
		}
	}

	log.Println("✅ Container cleanup completed")
}
