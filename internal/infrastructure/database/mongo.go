package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConfig centralizes the connection parameters instead of passing
// them around individually.
type MongoConfig struct {
	URI      string
	Database string

	// Driver pool sizing. The driver multiplexes request-concurrent
	// operations over this pool; the application adds no serialization
	// of its own.
	MaxPoolSize uint64
	MinPoolSize uint64

	// Timeouts. OperationTimeout bounds every store round-trip so a slow
	// store surfaces as Unavailable instead of a hung request.
	ConnectTimeout         time.Duration
	ServerSelectionTimeout time.Duration
	OperationTimeout       time.Duration

	// Retry configuration for the initial connect only.
	MaxRetries int
	RetryDelay time.Duration
}

// MongoDB wraps the client and the application database handle and owns
// the connect/health-check/close lifecycle.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	Config   *MongoConfig
}

// NewMongoDB creates an unconnected wrapper; Connect establishes the client.
func NewMongoDB(config *MongoConfig) *MongoDB {
	return &MongoDB{Config: config}
}

func (db *MongoDB) clientOptions() *options.ClientOptions {
	return options.Client().
		ApplyURI(db.Config.URI).
		SetMaxPoolSize(db.Config.MaxPoolSize).
		SetMinPoolSize(db.Config.MinPoolSize).
		SetConnectTimeout(db.Config.ConnectTimeout).
		SetServerSelectionTimeout(db.Config.ServerSelectionTimeout).
		SetTimeout(db.Config.OperationTimeout)
}

// connectWithRetry retries the initial connect with exponential backoff.
// Backoff doubles per attempt so a recovering store is not overwhelmed.
func (db *MongoDB) connectWithRetry(ctx context.Context) (*mongo.Client, error) {
	var client *mongo.Client
	var lastErr error

	for attempt := 1; attempt <= db.Config.MaxRetries; attempt++ {
		log.Printf("[DATABASE] Connection attempt %d/%d", attempt, db.Config.MaxRetries)

		connectCtx, cancel := context.WithTimeout(ctx, db.Config.ConnectTimeout)
		client, lastErr = mongo.Connect(connectCtx, db.clientOptions())
		cancel()

		if lastErr == nil {
			// Connect is lazy; ping to verify the deployment is reachable.
			pingCtx, cancel := context.WithTimeout(ctx, db.Config.ServerSelectionTimeout)
			err := client.Ping(pingCtx, readpref.Primary())
			cancel()

			if err == nil {
				log.Printf("[DATABASE] Successfully connected on attempt %d", attempt)
				return client, nil
			}

			_ = client.Disconnect(context.Background())
			lastErr = err
			log.Printf("[DATABASE] Ping failed: %v", err)
		}

		log.Printf("[DATABASE] Attempt %d failed: %v", attempt, lastErr)

		if attempt < db.Config.MaxRetries {
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Printf("[DATABASE] Retrying in %v...", delay)

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w",
		db.Config.MaxRetries, lastErr)
}

// Connect establishes the client connection and selects the database.
func (db *MongoDB) Connect(ctx context.Context) error {
	log.Println("[DATABASE] Initializing MongoDB connection...")

	client, err := db.connectWithRetry(ctx)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Client = client
	db.Database = client.Database(db.Config.Database)

	log.Println("[DATABASE] MongoDB connection established successfully")
	return nil
}

// HealthCheck verifies store connectivity; called from the health endpoint.
func (db *MongoDB) HealthCheck(ctx context.Context) error {
	if db.Client == nil {
		return fmt.Errorf("database client is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Client.Ping(healthCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close disconnects the client during graceful shutdown.
func (db *MongoDB) Close(ctx context.Context) error {
	if db.Client == nil {
		return nil
	}
	if err := db.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect: %w", err)
	}
	return nil
}
