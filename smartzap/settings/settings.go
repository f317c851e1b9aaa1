package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	queryGetSetting = `SELECT value FROM settings WHERE key = $1`

	queryUpsertSetting = `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	queryDeleteSetting = `DELETE FROM settings WHERE key = $1`
)

// key-value settings store backed by Postgres. satisfies the limits
// cache KVStore, so a deployment without Redis still shares one
// limits snapshot across instances.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// retrieves a setting value; absent keys report as empty, not as an error
func (r *Repository) Get(ctx context.Context, key string) (string, error) {
	var value string

	err := r.db.QueryRow(ctx, queryGetSetting, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}

	if err != nil {
		return "", err
	}

	return value, nil
}

// creates or replaces a setting value
func (r *Repository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.Exec(ctx, queryUpsertSetting, key, value)
	return err
}

// removes a setting
func (r *Repository) Delete(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, queryDeleteSetting, key)
	return err
}
