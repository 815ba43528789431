// Package app wires configuration into the services both commands run.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"til_mirror/internal/apperr"
	"til_mirror/internal/config"
	"til_mirror/internal/publisher"
	"til_mirror/internal/service"
	"til_mirror/internal/site"
	"til_mirror/internal/source/notion"
	"til_mirror/internal/storage/postgres"
)

// NewQueryService builds the Notion client and the query layer on top of it.
func NewQueryService(cfg *config.Config, logger *slog.Logger) *service.QueryService {
	client := notion.New(notion.Config{
		APIKey:         cfg.Notion.APIKey,
		BaseURL:        cfg.Notion.BaseURL,
		Version:        cfg.Notion.Version,
		Timeout:        cfg.Notion.Timeout,
		MaxAttempts:    cfg.Notion.Retry.MaxAttempts,
		InitialBackoff: cfg.Notion.Retry.InitialBackoff,
		MaxBackoff:     cfg.Notion.Retry.MaxBackoff,
	}, logger)

	return service.NewQueryService(
		client,
		cfg.Notion.DatabaseID,
		cfg.Notion.Properties,
		apperr.Classifier{Development: cfg.Development()},
		logger,
		cfg.Query,
	)
}

// Builder is a build service together with the connections it owns.
type Builder struct {
	*service.BuildService

	db        *sqlx.DB
	publisher *publisher.RabbitMQ
}

// ConnectDB opens the postgres database holding the build manifest.
func ConnectDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// NewBuilder connects to postgres and, when enabled, rabbitmq.
func NewBuilder(ctx context.Context, cfg *config.Config, query service.EntryQuerier, logger *slog.Logger) (*Builder, error) {
	db, err := ConnectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	b := &Builder{db: db}

	// A nil *RabbitMQ must not reach the service as a non-nil interface.
	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		b.publisher = rabbitMQ
		pub = rabbitMQ
	}

	b.BuildService = service.NewBuildService(
		query,
		site.NewWriter(cfg.Build.OutputDir, logger),
		postgres.NewPageStore(db),
		postgres.NewBuildStateStore(db),
		postgres.NewTransactionManager(db),
		pub,
		logger,
		cfg.Build,
	)

	return b, nil
}

func (b *Builder) Close() error {
	if b.publisher != nil {
		b.publisher.Close()
	}
	return b.db.Close()
}
