// Package store persists prediction lookups in Postgres.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

const schema = `
	CREATE TABLE IF NOT EXISTS prediction_history (
		id         UUID PRIMARY KEY,
		kind       TEXT NOT NULL,
		request    JSONB NOT NULL,
		response   JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS prediction_history_created_at_idx
		ON prediction_history (created_at DESC);
`

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// History is the Postgres-backed prediction history.
type History struct {
	pg PgPool
}

func NewHistory(pg PgPool) *History {
	return &History{pg: pg}
}

// Migrate creates the history table when missing.
func (h *History) Migrate(ctx context.Context) error {
	if _, err := h.pg.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create prediction_history: %w", err)
	}
	return nil
}

// Record stores one prediction lookup. request and response are stored as JSON.
func (h *History) Record(ctx context.Context, kind string, request, response interface{}) error {
	req, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	resp, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	_, err = h.pg.Exec(ctx, `
		INSERT INTO prediction_history (id, kind, request, response, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`, uuid.NewString(), kind, string(req), string(resp))
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	return nil
}

// Recent returns the latest lookups, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	limit = ClampRecent(limit)

	rows, err := h.pg.Query(ctx, `
		SELECT id::text, kind, request, response, created_at
		FROM prediction_history
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query prediction history: %w", err)
	}
	defer rows.Close()

	records := make([]models.PredictionRecord, 0, limit)
	for rows.Next() {
		var r models.PredictionRecord
		var req, resp []byte
		if err := rows.Scan(&r.ID, &r.Kind, &req, &resp, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		r.Request = json.RawMessage(req)
		r.Response = json.RawMessage(resp)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("prediction history rows: %w", err)
	}
	return records, nil
}

func (h *History) Ping(ctx context.Context) error {
	return h.pg.Ping(ctx)
}

// ClampRecent applies the default and upper bound for history listings.
func ClampRecent(limit int) int {
	switch {
	case limit <= 0:
		return DefaultRecentLimit
	case limit > MaxRecentLimit:
		return MaxRecentLimit
	default:
		return limit
	}
}

// Noop is used when Postgres is not configured: nothing is stored.
type Noop struct{}

func (Noop) Record(ctx context.Context, kind string, request, response interface{}) error {
	return nil
}

func (Noop) Recent(ctx context.Context, limit int) ([]models.PredictionRecord, error) {
	return []models.PredictionRecord{}, nil
}

func (Noop) Ping(ctx context.Context) error { return nil }
