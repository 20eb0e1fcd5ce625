package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

type Database struct {
	*sql.DB
}

// RetryPolicy bounds how long New waits for the database to answer a ping.
type RetryPolicy struct {
	MaxWait        time.Duration
	PingTimeout    time.Duration
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func DefaultRetryPolicy(maxWait time.Duration) RetryPolicy {
	return RetryPolicy{
		MaxWait:        maxWait,
		PingTimeout:    5 * time.Second,
		InitialBackoff: 500 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
	}
}

// New opens a pool with the named driver ("postgres" for lib/pq, "pgx" for
// pgx) and blocks until the server answers or the retry policy gives up.
func New(ctx context.Context, driverName, connectionString string, policy RetryPolicy) (*Database, error) {
	db, err := sql.Open(driverName, connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := WaitForPing(ctx, db, policy); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info().Str("driver", driverName).Msg("Successfully connected to database")
	return &Database{db}, nil
}

// WaitForPing pings db with exponential backoff until it succeeds, the
// policy's MaxWait elapses or ctx is cancelled.
func WaitForPing(ctx context.Context, db *sql.DB, policy RetryPolicy) error {
	deadline := time.Now().Add(policy.MaxWait)
	backoff := policy.InitialBackoff
	attempt := 0

	for {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, policy.PingTimeout)
		err := db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}

		if ctx.Err() != nil || time.Now().Add(backoff).After(deadline) {
			return fmt.Errorf("failed to ping database after %d attempts: %w", attempt, err)
		}

		log.Warn().Err(err).Int("attempt", attempt).Dur("backoff", backoff).Msg("Database not ready, retrying")

		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to ping database after %d attempts: %w", attempt, err)
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > policy.MaxBackoff {
			backoff = policy.MaxBackoff
		}
	}
}

func (db *Database) Close() error {
	return db.DB.Close()
}
