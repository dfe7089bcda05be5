package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const defaultDatabaseName = "nova"

// Open dials the MongoDB deployment named by DATABASE_URL and returns a
// Store bound to DATABASE_NAME. The caller decides what to do with an
// unconfigured or unreachable store; handlers built on a nil Store report
// "not configured" instead of panicking.
func Open() (*Store, error) {
	uri := os.Getenv("DATABASE_URL")
	if uri == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	name := os.Getenv("DATABASE_NAME")
	if name == "" {
		name = defaultDatabaseName
	}
	log.Printf("Connected to MongoDB, database %q", name)

	return &Store{client: client, db: client.Database(name)}, nil
}
