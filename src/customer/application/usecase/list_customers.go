package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/port"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/infrastructure/cache"
)

// ListCustomersUseCase caso de uso para listar los clientes guardados
type ListCustomersUseCase struct {
	settings      port.SettingRepository
	customerCache *cache.CustomerCache
}

// NewListCustomersUseCase crea una nueva instancia del caso de uso
func NewListCustomersUseCase(settings port.SettingRepository, customerCache *cache.CustomerCache) *ListCustomersUseCase {
	return &ListCustomersUseCase{
		settings:      settings,
		customerCache: customerCache,
	}
}

// Execute devuelve el directorio, del cache si ya está cargado
func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]string, error) {
	if names, ok := uc.customerCache.Get(); ok {
		return names, nil
	}

	names, err := loadCustomers(ctx, uc.settings)
	if err != nil {
		return nil, err
	}
	uc.customerCache.Replace(names)
	return names, nil
}

// loadCustomers lee el directorio desde settings; llave ausente es
// directorio vacío
func loadCustomers(ctx context.Context, settings port.SettingRepository) ([]string, error) {
	raw, err := settings.Get(ctx, cache.CustomersKey)
	if errors.Is(err, entity.ErrSettingNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading customers: %w", err)
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil, fmt.Errorf("error decoding customers: %w", err)
	}
	return names, nil
}

// saveCustomers persiste el directorio y refresca el cache
func saveCustomers(ctx context.Context, settings port.SettingRepository, customerCache *cache.CustomerCache, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("error encoding customers: %w", err)
	}
	if err := settings.Set(ctx, cache.CustomersKey, raw); err != nil {
		return fmt.Errorf("error writing customers: %w", err)
	}
	customerCache.Replace(names)
	return nil
}
