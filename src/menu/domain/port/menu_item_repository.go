package port

import (
	"context"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"

	"github.com/google/uuid"
)

// MenuItemRepository define el contrato para persistir productos del menú
type MenuItemRepository interface {
	Save(ctx context.Context, item *entity.MenuItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	ListAll(ctx context.Context) ([]*entity.MenuItem, error)
	ListByCategory(ctx context.Context, category entity.Category) ([]*entity.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
