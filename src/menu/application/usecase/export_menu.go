package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/application/response"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/port"
)

const menuExportVersion = 1

// ExportMenuUseCase caso de uso para exportar el menú completo como JSON
type ExportMenuUseCase struct {
	menuRepo   port.MenuItemRepository
	restaurant string
}

// NewExportMenuUseCase crea una nueva instancia del caso de uso
func NewExportMenuUseCase(menuRepo port.MenuItemRepository, restaurant string) *ExportMenuUseCase {
	return &ExportMenuUseCase{
		menuRepo:   menuRepo,
		restaurant: restaurant,
	}
}

// Execute arma el documento de exportación con todos los productos
func (uc *ExportMenuUseCase) Execute(ctx context.Context) (*response.MenuExportResponse, error) {
	items, err := uc.menuRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error exporting menu: %w", err)
	}
	if items == nil {
		items = []*entity.MenuItem{}
	}

	return &response.MenuExportResponse{
		Version:    menuExportVersion,
		ExportDate: time.Now(),
		Restaurant: uc.restaurant,
		Items:      items,
	}, nil
}
