package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "modernc.org/sqlite"

	"github.com/scribepipe/scribepipe/gen/ent"
	"github.com/scribepipe/scribepipe/internal/common"
)

// DBHandle bundles an open database with its teardown. Pool is nil in
// in-memory mode.
type DBHandle struct {
	Client *ent.Client
	Pool   *pgxpool.Pool

	cleanup func()
}

func (h *DBHandle) Cleanup() {
	if h.cleanup != nil {
		h.cleanup()
	}
}

// InitDatabase opens either the configured Postgres database or a
// throwaway in-memory SQLite one. The in-memory path creates the
// schema itself; Postgres is assumed to be migrated already.
func InitDatabase(ctx context.Context, cfg common.DatabaseConfig, inmem bool, logger *slog.Logger) (*DBHandle, error) {
	if inmem {
		db, err := sql.Open("sqlite", "file:scribepipe?mode=memory&cache=shared&_pragma=foreign_keys(1)")
		if err != nil {
			return nil, common.ConfigurationError("open in-memory database", err)
		}
		// a shared-cache in-memory db vanishes when the last conn closes
		db.SetMaxIdleConns(1)

		drv := entsql.OpenDB(dialect.SQLite, db)
		client := ent.NewClient(ent.Driver(drv))
		if err := client.Schema.Create(ctx); err != nil {
			_ = client.Close()
			return nil, common.WrapError(err, "create in-memory schema")
		}
		logger.Info("using in-memory database")
		return &DBHandle{
			Client:  client,
			cleanup: func() { _ = client.Close() },
		}, nil
	}

	entc, pool, err := Open(ctx, Config{
		DSN:             cfg.DSN,
		MaxConns:        cfg.MaxConns,
		MinConns:        cfg.MinConns,
		MaxConnLifetime: cfg.MaxConnLifetime,
		MaxConnIdleTime: cfg.MaxConnIdleTime,
		DialTimeout:     cfg.DialTimeout,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &DBHandle{
		Client:  entc,
		Pool:    pool,
		cleanup: func() { Close(entc, pool, logger) },
	}, nil
}
