package usecase

import (
	"context"
	"strings"

	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/port"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/infrastructure/cache"
)

// RemoveCustomerUseCase caso de uso para quitar un cliente guardado
type RemoveCustomerUseCase struct {
	settings      port.SettingRepository
	customerCache *cache.CustomerCache
}

// NewRemoveCustomerUseCase crea una nueva instancia del caso de uso
func NewRemoveCustomerUseCase(settings port.SettingRepository, customerCache *cache.CustomerCache) *RemoveCustomerUseCase {
	return &RemoveCustomerUseCase{
		settings:      settings,
		customerCache: customerCache,
	}
}

// Execute quita el nombre del directorio, conservando el orden del resto
func (uc *RemoveCustomerUseCase) Execute(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, entity.ErrCustomerNameEmpty
	}

	names, err := loadCustomers(ctx, uc.settings)
	if err != nil {
		return nil, err
	}

	remaining := make([]string, 0, len(names))
	found := false
	for _, existing := range names {
		if strings.EqualFold(existing, name) {
			found = true
			continue
		}
		remaining = append(remaining, existing)
	}
	if !found {
		return nil, entity.ErrCustomerNotFound
	}

	if err := saveCustomers(ctx, uc.settings, uc.customerCache, remaining); err != nil {
		return nil, err
	}
	return remaining, nil
}
