package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/port"
)

// DailyStatsPostgresRepository implementa DailyStatsRepository usando
// PostgreSQL. El resumen completo se guarda como payload JSONB keyed
// por fecha; nadie consulta dentro del payload.
type DailyStatsPostgresRepository struct {
	db *sql.DB
}

// NewDailyStatsPostgresRepository crea el repositorio y asegura el esquema
func NewDailyStatsPostgresRepository(db *sql.DB) (port.DailyStatsRepository, error) {
	r := &DailyStatsPostgresRepository{db: db}
	if err := r.migrate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *DailyStatsPostgresRepository) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS daily_stats (
		date TEXT PRIMARY KEY,
		saved_at TIMESTAMPTZ NOT NULL,
		payload JSONB NOT NULL
	);`
	_, err := r.db.ExecContext(context.Background(), query)
	return err
}

// SaveSnapshot inserta o reemplaza el cierre de su fecha
func (r *DailyStatsPostgresRepository) SaveSnapshot(ctx context.Context, snapshot *entity.StatsSnapshot) error {
	payload, err := json.Marshal(snapshot.Stats)
	if err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}

	query := `
		INSERT INTO daily_stats (date, saved_at, payload)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO UPDATE SET
			saved_at = EXCLUDED.saved_at,
			payload = EXCLUDED.payload
	`
	if _, err := r.db.ExecContext(ctx, query, snapshot.Date, snapshot.SavedAt, payload); err != nil {
		return fmt.Errorf("error saving snapshot: %w", err)
	}
	return nil
}

// FindByDate obtiene el cierre guardado para una fecha
func (r *DailyStatsPostgresRepository) FindByDate(ctx context.Context, date string) (*entity.StatsSnapshot, error) {
	query := `SELECT date, saved_at, payload FROM daily_stats WHERE date = $1`
	snapshot, err := scanSnapshot(r.db.QueryRowContext(ctx, query, date))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSnapshotNotFound
	}
	return snapshot, err
}

// ListAll retorna todos los cierres ordenados por fecha
func (r *DailyStatsPostgresRepository) ListAll(ctx context.Context) ([]*entity.StatsSnapshot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT date, saved_at, payload FROM daily_stats ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("error querying snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []*entity.StatsSnapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snapshot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshots: %w", err)
	}
	return snapshots, nil
}

// DeleteAll borra todos los cierres guardados
func (r *DailyStatsPostgresRepository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM daily_stats`)
	if err != nil {
		return 0, fmt.Errorf("error deleting snapshots: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error counting deleted snapshots: %w", err)
	}
	return int(affected), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row rowScanner) (*entity.StatsSnapshot, error) {
	snapshot := &entity.StatsSnapshot{}
	var payload []byte

	if err := row.Scan(&snapshot.Date, &snapshot.SavedAt, &payload); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(payload, &snapshot.Stats); err != nil {
		return nil, fmt.Errorf("error decoding snapshot: %w", err)
	}
	return snapshot, nil
}
