package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	menuentity "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"

	"github.com/google/uuid"
)

// OrderPostgresRepository implementa OrderRepository usando PostgreSQL
type OrderPostgresRepository struct {
	db *sql.DB
}

// NewOrderPostgresRepository crea el repositorio y asegura el esquema
func NewOrderPostgresRepository(db *sql.DB) (port.OrderRepository, error) {
	r := &OrderPostgresRepository{db: db}
	if err := r.migrate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *OrderPostgresRepository) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		customer_name TEXT NOT NULL,
		product_name TEXT NOT NULL,
		category TEXT NOT NULL,
		total_price NUMERIC(12,4) NOT NULL DEFAULT 0,
		delivery_time TEXT NOT NULL DEFAULT '',
		for_now BOOLEAN NOT NULL DEFAULT FALSE,
		payment_method TEXT NOT NULL,
		status TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		customizations TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ
	);
	CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status);
	CREATE INDEX IF NOT EXISTS idx_orders_customer_name ON orders (customer_name);
	CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at);`
	_, err := r.db.ExecContext(context.Background(), query)
	return err
}

const orderColumns = `
	id, customer_name, product_name, category, total_price,
	delivery_time, for_now, payment_method, status, notes,
	customizations, created_at, completed_at`

// Save inserta o reemplaza el pedido (upsert por identidad del registro)
func (r *OrderPostgresRepository) Save(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (
			id, customer_name, product_name, category, total_price,
			delivery_time, for_now, payment_method, status, notes,
			customizations, created_at, completed_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			completed_at = EXCLUDED.completed_at,
			notes = EXCLUDED.notes
	`

	var completedAt sql.NullTime
	if order.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *order.CompletedAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		order.ID,
		order.CustomerName,
		order.ProductName,
		string(order.Category),
		order.TotalPrice,
		order.DeliveryTime,
		order.ForNow,
		string(order.PaymentMethod),
		string(order.Status),
		order.Notes,
		order.Customizations,
		order.CreatedAt,
		completedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving order: %w", err)
	}
	return nil
}

// FindByID obtiene un pedido por su ID
func (r *OrderPostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrOrderNotFound
	}
	return order, err
}

// ListAll retorna todos los pedidos ordenados por fecha de alta
func (r *OrderPostgresRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at`
	return r.queryMany(ctx, query)
}

// ListByStatus retorna los pedidos en un estado dado
func (r *OrderPostgresRepository) ListByStatus(ctx context.Context, status entity.OrderStatus) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY created_at`
	return r.queryMany(ctx, query, string(status))
}

// Delete elimina el pedido indicado
func (r *OrderPostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting order: %w", err)
	}
	return nil
}

// DeleteCompleted elimina todos los pedidos completados
func (r *OrderPostgresRepository) DeleteCompleted(ctx context.Context) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE status = $1`, string(entity.OrderStatusCompleted))
	if err != nil {
		return 0, fmt.Errorf("error deleting completed orders: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error counting deleted orders: %w", err)
	}
	return int(affected), nil
}

func (r *OrderPostgresRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*entity.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	return orders, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	order := &entity.Order{}
	var category, paymentMethod, status string
	var completedAt sql.NullTime

	err := row.Scan(
		&order.ID,
		&order.CustomerName,
		&order.ProductName,
		&category,
		&order.TotalPrice,
		&order.DeliveryTime,
		&order.ForNow,
		&paymentMethod,
		&status,
		&order.Notes,
		&order.Customizations,
		&order.CreatedAt,
		&completedAt,
	)
	if err != nil {
		return nil, err
	}

	order.Category = menuentity.Category(category)
	order.PaymentMethod = entity.PaymentMethod(paymentMethod)
	order.Status = entity.OrderStatus(status)
	if completedAt.Valid {
		t := completedAt.Time
		order.CompletedAt = &t
	}
	return order, nil
}
