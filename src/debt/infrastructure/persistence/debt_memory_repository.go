package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"

	"github.com/google/uuid"
)

// DebtMemoryRepository implementa DebtRepository en memoria.
// Se usa cuando el servicio arranca sin base de datos y en tests.
type DebtMemoryRepository struct {
	mu    sync.Mutex
	debts map[uuid.UUID]entity.Debt
}

// NewDebtMemoryRepository crea un repositorio en memoria vacío
func NewDebtMemoryRepository() port.DebtRepository {
	return &DebtMemoryRepository{
		debts: make(map[uuid.UUID]entity.Debt),
	}
}

func (r *DebtMemoryRepository) Save(_ context.Context, debt *entity.Debt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debts[debt.ID] = cloneDebt(*debt)
	return nil
}

func (r *DebtMemoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	debt, ok := r.debts[id]
	if !ok {
		return nil, entity.ErrDebtNotFound
	}
	copy := cloneDebt(debt)
	return &copy, nil
}

func (r *DebtMemoryRepository) ListAll(_ context.Context) ([]*entity.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(entity.Debt) bool { return true }), nil
}

func (r *DebtMemoryRepository) ListByStatus(_ context.Context, status entity.DebtStatus) ([]*entity.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(d entity.Debt) bool { return d.Status == status }), nil
}

// AppendPayment sostiene el candado durante todo el ciclo
// lectura-validación-escritura, igual que la transacción del repositorio
// de PostgreSQL.
func (r *DebtMemoryRepository) AppendPayment(_ context.Context, debtID uuid.UUID, payment entity.Payment) (*entity.Debt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	debt, ok := r.debts[debtID]
	if !ok {
		return nil, entity.ErrDebtNotFound
	}

	updated := cloneDebt(debt)
	if err := updated.AddPayment(payment); err != nil {
		return nil, err
	}

	r.debts[debtID] = cloneDebt(updated)
	return &updated, nil
}

func (r *DebtMemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.debts, id)
	return nil
}

func (r *DebtMemoryRepository) collect(keep func(entity.Debt) bool) []*entity.Debt {
	var debts []*entity.Debt
	for _, debt := range r.debts {
		if keep(debt) {
			copy := cloneDebt(debt)
			debts = append(debts, &copy)
		}
	}
	sort.Slice(debts, func(i, j int) bool { return debts[i].CreatedAt.Before(debts[j].CreatedAt) })
	return debts
}

// cloneDebt copia la deuda con su propia secuencia de abonos, para que
// las copias entregadas afuera no compartan el slice interno
func cloneDebt(debt entity.Debt) entity.Debt {
	payments := make([]entity.Payment, len(debt.Payments))
	copy(payments, debt.Payments)
	debt.Payments = payments
	return debt
}
