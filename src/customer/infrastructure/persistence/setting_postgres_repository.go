package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/port"
)

// SettingPostgresRepository implementa SettingRepository usando PostgreSQL
type SettingPostgresRepository struct {
	db *sql.DB
}

// NewSettingPostgresRepository crea el repositorio y asegura el esquema
func NewSettingPostgresRepository(db *sql.DB) (port.SettingRepository, error) {
	r := &SettingPostgresRepository{db: db}
	if err := r.migrate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SettingPostgresRepository) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL
	);`
	_, err := r.db.ExecContext(context.Background(), query)
	return err
}

// Get obtiene el valor guardado bajo la llave
func (r *SettingPostgresRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSettingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error reading setting %q: %w", key, err)
	}
	return value, nil
}

// Set inserta o reemplaza el valor bajo la llave
func (r *SettingPostgresRepository) Set(ctx context.Context, key string, value json.RawMessage) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := r.db.ExecContext(ctx, query, key, []byte(value)); err != nil {
		return fmt.Errorf("error writing setting %q: %w", key, err)
	}
	return nil
}
