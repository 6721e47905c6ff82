package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/olgkv/taskboard/internal/ports"
)

const createLocalStorageTable = `CREATE TABLE IF NOT EXISTS local_storage (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// PostgresLocalStorage keeps entries in the local_storage table.
type PostgresLocalStorage struct {
	db *pgxpool.Pool
}

// NewPostgresLocalStorage creates the backing table if needed.
func NewPostgresLocalStorage(ctx context.Context, db *pgxpool.Pool) (*PostgresLocalStorage, error) {
	if _, err := db.Exec(ctx, createLocalStorageTable); err != nil {
		return nil, fmt.Errorf("create local_storage table: %w", err)
	}
	return &PostgresLocalStorage{db: db}, nil
}

func (r *PostgresLocalStorage) GetItem(ctx context.Context, key string) (string, error) {
	var v string
	err := r.db.QueryRow(ctx, `SELECT value FROM local_storage WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ports.ErrNotFound
	}
	return v, err
}

func (r *PostgresLocalStorage) SetItem(ctx context.Context, key, value string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO local_storage (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value)
	return err
}
