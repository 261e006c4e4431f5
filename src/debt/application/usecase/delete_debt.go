package usecase

import (
	"context"
	"fmt"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"

	"github.com/google/uuid"
)

// DeleteDebtUseCase caso de uso para eliminar una deuda del registro
type DeleteDebtUseCase struct {
	debtRepo port.DebtRepository
}

// NewDeleteDebtUseCase crea una nueva instancia del caso de uso
func NewDeleteDebtUseCase(debtRepo port.DebtRepository) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo: debtRepo,
	}
}

// Execute elimina la deuda si existe
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, debtID uuid.UUID) error {
	if _, err := uc.debtRepo.FindByID(ctx, debtID); err != nil {
		return err
	}

	if err := uc.debtRepo.Delete(ctx, debtID); err != nil {
		return fmt.Errorf("error deleting debt: %w", err)
	}
	return nil
}
