package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-profile-auth/config"
)

const pingTimeout = 5 * time.Second

// NewPool opens the connection pool shared by the account and profile
// directories and checks the database is reachable.
func NewPool(ctx context.Context, c *config.Config) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(c.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	cfg.MaxConns = c.DBMaxConns
	cfg.MinConns = c.DBMinConns
	cfg.MaxConnLifetime = c.DBMaxConnLife
	cfg.ConnConfig.RuntimeParams["application_name"] = c.AppName

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres at %s:%s: %w", c.DBHost, c.DBPort, err)
	}
	return pool, nil
}
