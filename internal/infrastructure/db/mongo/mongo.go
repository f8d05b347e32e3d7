package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout = 10 * time.Second
	appName        = "portal"
)

// Config holds the settings of the report archive database.
type Config struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	Timeout     time.Duration
}

// Archive is an open connection to the report archive.
type Archive struct {
	client *mongo.Client
	DB     *mongo.Database
}

// Open connects and pings the primary before returning.
func Open(ctx context.Context, cfg Config) (*Archive, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo: empty URI")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout)
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Archive{client: client, DB: client.Database(cfg.Database)}, nil
}

// Reports returns the report repository with its indexes in place.
func (a *Archive) Reports(ctx context.Context) (*ReportRepository, error) {
	repo := NewReportRepository(a.DB)
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

func (a *Archive) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}
