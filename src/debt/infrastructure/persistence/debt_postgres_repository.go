package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"

	"github.com/google/uuid"
)

// DebtPostgresRepository implementa DebtRepository usando PostgreSQL.
// La deuda vive en dos tablas: el registro principal y sus abonos como
// filas de solo agregado.
type DebtPostgresRepository struct {
	db *sql.DB
}

// NewDebtPostgresRepository crea el repositorio y asegura el esquema
func NewDebtPostgresRepository(db *sql.DB) (port.DebtRepository, error) {
	r := &DebtPostgresRepository{db: db}
	if err := r.migrate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *DebtPostgresRepository) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS debts (
		id UUID PRIMARY KEY,
		customer_name TEXT NOT NULL,
		amount NUMERIC(12,4) NOT NULL,
		concept TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	CREATE TABLE IF NOT EXISTS debt_payments (
		id BIGSERIAL PRIMARY KEY,
		debt_id UUID NOT NULL REFERENCES debts (id) ON DELETE CASCADE,
		amount NUMERIC(12,4) NOT NULL,
		paid_at TIMESTAMPTZ NOT NULL,
		notes TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS idx_debts_status ON debts (status);
	CREATE INDEX IF NOT EXISTS idx_debts_customer_name ON debts (customer_name);
	CREATE INDEX IF NOT EXISTS idx_debt_payments_debt_id ON debt_payments (debt_id);`
	_, err := r.db.ExecContext(context.Background(), query)
	return err
}

// Save inserta o reemplaza el registro principal de la deuda.
// Los abonos no pasan por aquí: se agregan solo vía AppendPayment.
func (r *DebtPostgresRepository) Save(ctx context.Context, debt *entity.Debt) error {
	query := `
		INSERT INTO debts (id, customer_name, amount, concept, phone, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			customer_name = EXCLUDED.customer_name,
			concept = EXCLUDED.concept,
			phone = EXCLUDED.phone,
			status = EXCLUDED.status
	`
	_, err := r.db.ExecContext(ctx, query,
		debt.ID,
		debt.CustomerName,
		debt.Amount,
		debt.Concept,
		debt.Phone,
		string(debt.Status),
		debt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving debt: %w", err)
	}
	return nil
}

// FindByID obtiene una deuda con su historial de abonos
func (r *DebtPostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	query := `SELECT id, customer_name, amount, concept, phone, status, created_at FROM debts WHERE id = $1`
	debt, err := scanDebt(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrDebtNotFound
	}
	if err != nil {
		return nil, err
	}

	debt.Payments, err = r.loadPayments(ctx, r.db, id)
	if err != nil {
		return nil, err
	}
	return debt, nil
}

// ListAll retorna todas las deudas con sus abonos
func (r *DebtPostgresRepository) ListAll(ctx context.Context) ([]*entity.Debt, error) {
	query := `SELECT id, customer_name, amount, concept, phone, status, created_at FROM debts ORDER BY created_at`
	return r.queryMany(ctx, query)
}

// ListByStatus retorna las deudas en un estado dado, con sus abonos
func (r *DebtPostgresRepository) ListByStatus(ctx context.Context, status entity.DebtStatus) ([]*entity.Debt, error) {
	query := `SELECT id, customer_name, amount, concept, phone, status, created_at FROM debts WHERE status = $1 ORDER BY created_at`
	return r.queryMany(ctx, query, string(status))
}

// AppendPayment aplica el abono dentro de una transacción, bloqueando el
// registro de la deuda para que dos abonos concurrentes no rebasen el
// saldo ni se pierdan.
func (r *DebtPostgresRepository) AppendPayment(ctx context.Context, debtID uuid.UUID, payment entity.Payment) (*entity.Debt, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	query := `SELECT id, customer_name, amount, concept, phone, status, created_at FROM debts WHERE id = $1 FOR UPDATE`
	debt, err := scanDebt(tx.QueryRowContext(ctx, query, debtID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrDebtNotFound
	}
	if err != nil {
		return nil, err
	}

	debt.Payments, err = r.loadPayments(ctx, tx, debtID)
	if err != nil {
		return nil, err
	}

	if err := debt.AddPayment(payment); err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO debt_payments (debt_id, amount, paid_at, notes) VALUES ($1, $2, $3, $4)`,
		debtID, payment.Amount, payment.Date, payment.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("error inserting payment: %w", err)
	}

	_, err = tx.ExecContext(ctx, `UPDATE debts SET status = $1 WHERE id = $2`, string(debt.Status), debtID)
	if err != nil {
		return nil, fmt.Errorf("error updating debt status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing payment: %w", err)
	}
	return debt, nil
}

// Delete elimina la deuda y, por cascada, sus abonos
func (r *DebtPostgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM debts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting debt: %w", err)
	}
	return nil
}

// querier abstrae *sql.DB y *sql.Tx para las lecturas compartidas
type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func (r *DebtPostgresRepository) queryMany(ctx context.Context, query string, args ...interface{}) ([]*entity.Debt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying debts: %w", err)
	}
	defer rows.Close()

	var debts []*entity.Debt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debts: %w", err)
	}

	for _, debt := range debts {
		debt.Payments, err = r.loadPayments(ctx, r.db, debt.ID)
		if err != nil {
			return nil, err
		}
	}
	return debts, nil
}

func (r *DebtPostgresRepository) loadPayments(ctx context.Context, q querier, debtID uuid.UUID) ([]entity.Payment, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT amount, paid_at, notes FROM debt_payments WHERE debt_id = $1 ORDER BY paid_at, id`,
		debtID,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying payments: %w", err)
	}
	defer rows.Close()

	payments := []entity.Payment{}
	for rows.Next() {
		var p entity.Payment
		if err := rows.Scan(&p.Amount, &p.Date, &p.Notes); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}
	return payments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDebt(row rowScanner) (*entity.Debt, error) {
	debt := &entity.Debt{}
	var status string

	err := row.Scan(
		&debt.ID,
		&debt.CustomerName,
		&debt.Amount,
		&debt.Concept,
		&debt.Phone,
		&status,
		&debt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	debt.Status = entity.DebtStatus(status)
	return debt, nil
}
