package config

import (
	"fmt"
	"time"

	"antiquify-backend/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the MongoDB settings from environment variables.
func LoadDatabaseConfig() (*database.MongoConfig, error) {
	maxPool := getEnvInt("MONGO_MAX_POOL_SIZE", 100)
	minPool := getEnvInt("MONGO_MIN_POOL_SIZE", 0)
	maxRetries := getEnvInt("MONGO_MAX_RETRIES", 5)

	connectTimeout, err := time.ParseDuration(getEnv("MONGO_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_CONNECT_TIMEOUT: %w", err)
	}

	selectionTimeout, err := time.ParseDuration(getEnv("MONGO_SELECTION_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_SELECTION_TIMEOUT: %w", err)
	}

	opTimeout, err := time.ParseDuration(getEnv("MONGO_OP_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_OP_TIMEOUT: %w", err)
	}

	retryDelay, err := time.ParseDuration(getEnv("MONGO_RETRY_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_RETRY_DELAY: %w", err)
	}

	return &database.MongoConfig{
		URI:                    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Database:               getEnv("MONGO_DATABASE", "antiquify"),
		MaxPoolSize:            uint64(maxPool),
		MinPoolSize:            uint64(minPool),
		ConnectTimeout:         connectTimeout,
		ServerSelectionTimeout: selectionTimeout,
		OperationTimeout:       opTimeout,
		MaxRetries:             maxRetries,
		RetryDelay:             retryDelay,
	}, nil
}
