// Package infrastructure manages database connections and shared
// clients. A single pgxpool backs Ent, River, and the raw inventory
// transactions so that pool limits are enforced in one place.
package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"

	"github.com/sergioLiiD/yaavs-v5-sub002/ent"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/config"
	"github.com/sergioLiiD/yaavs-v5-sub002/internal/pkg/logger"
)

// Database bundles the shared connection pool with the clients built
// on top of it.
type Database struct {
	Pool   *pgxpool.Pool
	Ent    *ent.Client
	River  *river.Client[pgx.Tx]
	sqlDB  *sql.DB
	closed bool
}

// NewDatabase opens the shared pgx pool and wires the Ent client over
// it. River is attached later via InitRiverClient because its worker
// registry needs services that in turn need the Ent client.
func NewDatabase(ctx context.Context, cfg config.DatabaseConfig) (*Database, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB("postgres", sqlDB)
	entClient := ent.NewClient(ent.Driver(drv))

	logger.Info("Database connected",
		zap.Int32("max_conns", poolCfg.MaxConns),
		zap.Int32("min_conns", poolCfg.MinConns),
	)

	return &Database{
		Pool:  pool,
		Ent:   entClient,
		sqlDB: sqlDB,
	}, nil
}

// AutoMigrate runs the Ent schema migration plus the River queue
// table migration. Intended for development and tests; production
// uses versioned migrations.
func (d *Database) AutoMigrate(ctx context.Context) error {
	if err := d.Ent.Schema.Create(ctx); err != nil {
		return fmt.Errorf("run schema migration: %w", err)
	}

	migrator, err := rivermigrate.New(riverpgxv5.New(d.Pool), nil)
	if err != nil {
		return fmt.Errorf("create river migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("river migrate up: %w", err)
	}

	logger.Info("Schema migration complete",
		zap.Int("river_versions_applied", len(res.Versions)),
	)
	return nil
}

// InitRiverClient creates the River client over the shared pool with
// the given workers and periodic jobs. Call Start separately.
func (d *Database) InitRiverClient(workers *river.Workers, periodic []*river.PeriodicJob, maxWorkers int, retention time.Duration) error {
	riverClient, err := river.NewClient(riverpgxv5.New(d.Pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:                     workers,
		PeriodicJobs:                periodic,
		JobTimeout:                  5 * time.Minute,
		CompletedJobRetentionPeriod: retention,
	})
	if err != nil {
		return fmt.Errorf("create river client: %w", err)
	}
	d.River = riverClient
	return nil
}

// Close shuts down the database clients in dependency order.
func (d *Database) Close(ctx context.Context) {
	if d.closed {
		return
	}
	d.closed = true

	if d.River != nil {
		if err := d.River.Stop(ctx); err != nil {
			logger.Warn("River client stop", zap.Error(err))
		}
	}
	if err := d.Ent.Close(); err != nil {
		logger.Warn("Ent client close", zap.Error(err))
	}
	d.Pool.Close()
	logger.Info("Database connections closed")
}
