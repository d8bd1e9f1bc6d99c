package postgres

import (
	"context"
	"database/sql"
	"time"

	"camrent-backend/internal/repository"
)

type cartSnapshotRepository struct {
	db *sql.DB
}

func NewCartSnapshotRepository(db *sql.DB) repository.CartSnapshotRepository {
	return &cartSnapshotRepository{db: db}
}

func (r *cartSnapshotRepository) Save(ctx context.Context, key, payload string) error {
	query := `INSERT INTO cart_snapshots (session_key, payload, updated_on)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (session_key) DO UPDATE SET payload = $2, updated_on = $3`
	_, err := r.db.ExecContext(ctx, query, key, payload, time.Now())
	return err
}

func (r *cartSnapshotRepository) Load(ctx context.Context, key string) (string, error) {
	var payload string
	query := `SELECT payload FROM cart_snapshots WHERE session_key = $1`
	err := r.db.QueryRowContext(ctx, query, key).Scan(&payload)
	if err != nil {
		return "", err
	}
	return payload, nil
}

func (r *cartSnapshotRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM cart_snapshots WHERE session_key = $1`
	_, err := r.db.ExecContext(ctx, query, key)
	return err
}

func (r *cartSnapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM cart_snapshots WHERE updated_on < $1`
	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
