// Package database owns the document store connection lifecycle. The two
// collection handles are created once at startup and shared read-only by
// every request handler.
package database

import (
	"context"
	"fmt"
	"time"

	"scene-backend/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection = "users"
	chatsCollection = "chats"

	serverSelectionTimeout = 5 * time.Second
)

type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(cfg.MongoDBName),
	}, nil
}

func (m *Mongo) Users() *mongo.Collection {
	return m.db.Collection(usersCollection)
}

func (m *Mongo) Chats() *mongo.Collection {
	return m.db.Collection(chatsCollection)
}

func (m *Mongo) HealthCheck(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
