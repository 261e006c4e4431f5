package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/port"

	"github.com/google/uuid"
)

// MenuItemPostgresRepository implementa MenuItemRepository usando PostgreSQL.
// Complementos y opciones se guardan como JSONB dentro del registro: son
// datos propios del producto, no agregados con vida independiente.
type MenuItemPostgresRepository struct {
	db *sql.DB
}

// NewMenuItemPostgresRepository crea el repositorio y asegura el esquema
func NewMenuItemPostgresRepository(db *sql.DB) (port.MenuItemRepository, error) {
	r := &MenuItemPostgresRepository{db: db}
	if err := r.migrate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MenuItemPostgresRepository) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		base_price NUMERIC(12,4) NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		complements JSONB NOT NULL DEFAULT '[]',
		options JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items (category);
	CREATE INDEX IF NOT EXISTS idx_menu_items_name ON menu_items (name);`
	_, err := r.db.ExecContext(context.Background(), query)
	return err
}

// Save inserta o reemplaza el producto (upsert por identidad del registro)
func (r *MenuItemPostgresRepository) Save(ctx context.Context, item *entity.MenuItem) error {
	complementsJSON, err := json.Marshal(item.Complements)
	if err != nil {
		return fmt.Errorf("error marshaling complements: %w", err)
	}
	optionsJSON, err := json.Marshal(item.Options)
	if err != nil {
		return fmt.Errorf("error marshaling options: %w", err)
	}

	query := `
		INSERT INTO menu_items (id, name, category, base_price, description, complements, options, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			base_price = EXCLUDED.base_price,
			description = EXCLUDED.description,
			complements = EXCLUDED.complements,
			options = EXCLUDED.options
	`

	_, err = r.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		string(item.Category),
		item.BasePrice,
		item.Description,
		complementsJSON,
		optionsJSON,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving menu item: %w", err)
	}
	return nil
}

// FindByID obtiene un producto por su ID
func (r *MenuItemPostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	query := `
		SELECT id, name, category, base_price, description, complements, options, created_at
		FROM menu_items
		WHERE id = $1
	`
	item, err := scanMenuItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrMenuItemNotFound
	}
	return item, err
}

// ListAll retorna todos los productos ordenados por nombre
func (r *MenuItemPostgresRepository) ListAll(ctx context.Context) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, name, category, base_price, description, complements, options, created_at
		FROM menu_items
		ORDER BY name
	`
	return r.queryMany(ctx, query)
}

// ListByCategory retorna los productos de una categoría
func (r *MenuItemPostgresRepository) ListByCategory(ctx context.Context, category entity.Category) ([]*entity.MenuItem, error) {
	query := `
		SELECT id, name, category, base_price, description, complements, options, created_at
		FROM menu_items
		WHERE category = $1
		ORDER BY name
	`
	return r.queryMany(ctx, query, string(category))
}

// Delete elimina el producto indicado
func (r *MenuItemPostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting menu item: %w", err)
	}
	return nil
}

func (r *MenuItemPostgresRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*entity.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying menu_items: %w", err)
	}
	defer rows.Close()

	var items []*entity.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu_items: %w", err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMenuItem(row rowScanner) (*entity.MenuItem, error) {
	item := &entity.MenuItem{}
	var category string
	var complementsJSON, optionsJSON []byte

	err := row.Scan(
		&item.ID,
		&item.Name,
		&category,
		&item.BasePrice,
		&item.Description,
		&complementsJSON,
		&optionsJSON,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Category = entity.Category(category)
	if err := json.Unmarshal(complementsJSON, &item.Complements); err != nil {
		return nil, fmt.Errorf("error unmarshaling complements: %w", err)
	}
	if err := json.Unmarshal(optionsJSON, &item.Options); err != nil {
		return nil, fmt.Errorf("error unmarshaling options: %w", err)
	}
	return item, nil
}
