// Package store loads generated bundles into Postgres for test environments
// that want their fixtures queryable. It is a best-effort fixture sink, not a
// store of record.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ipsgen/ipsgen/internal/ips"
	"github.com/ipsgen/ipsgen/internal/platform/fhir"
)

// NewPool opens a pgx connection pool against databaseURL and verifies it
// with a ping.
func NewPool(ctx context.Context, databaseURL string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	cfg.MaxConns = maxConns
	cfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// BundleStore persists rendered document bundles.
type BundleStore struct {
	pool *pgxpool.Pool
}

// NewBundleStore creates a BundleStore on the given pool.
func NewBundleStore(pool *pgxpool.Pool) *BundleStore {
	return &BundleStore{pool: pool}
}

// EnsureSchema creates the bundle table when it does not exist yet.
func (s *BundleStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS ips_bundles (
			id UUID PRIMARY KEY,
			subject_index INT NOT NULL,
			record_index INT NOT NULL,
			bundle JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("create ips_bundles table: %w", err)
	}
	return nil
}

// Insert renders the record's document and writes it as one jsonb row.
func (s *BundleStore) Insert(ctx context.Context, rec *ips.Record) error {
	bundle, err := fhir.RenderBundle(rec.Document)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("marshal bundle %s: %w", rec.Document.ID, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO ips_bundles (id, subject_index, record_index, bundle)
		VALUES ($1, $2, $3, $4)`,
		rec.Document.ID, rec.Subject, rec.Repeat, raw)
	if err != nil {
		return fmt.Errorf("insert bundle %s: %w", rec.Document.ID, err)
	}
	return nil
}

// Count returns the number of stored bundles.
func (s *BundleStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ips_bundles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bundles: %w", err)
	}
	return n, nil
}
