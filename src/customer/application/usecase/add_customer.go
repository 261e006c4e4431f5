package usecase

import (
	"context"
	"strings"

	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/port"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/infrastructure/cache"
)

// AddCustomerUseCase caso de uso para guardar un cliente frecuente
type AddCustomerUseCase struct {
	settings      port.SettingRepository
	customerCache *cache.CustomerCache
}

// NewAddCustomerUseCase crea una nueva instancia del caso de uso
func NewAddCustomerUseCase(settings port.SettingRepository, customerCache *cache.CustomerCache) *AddCustomerUseCase {
	return &AddCustomerUseCase{
		settings:      settings,
		customerCache: customerCache,
	}
}

// Execute agrega el nombre al directorio.
// Los duplicados se comparan sin distinguir mayúsculas.
func (uc *AddCustomerUseCase) Execute(ctx context.Context, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, entity.ErrCustomerNameEmpty
	}

	names, err := loadCustomers(ctx, uc.settings)
	if err != nil {
		return nil, err
	}

	for _, existing := range names {
		if strings.EqualFold(existing, name) {
			return nil, entity.ErrCustomerAlreadyExists
		}
	}

	names = append(names, name)
	if err := saveCustomers(ctx, uc.settings, uc.customerCache, names); err != nil {
		return nil, err
	}
	return names, nil
}
