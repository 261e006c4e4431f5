package persistence

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/port"
)

// SettingMemoryRepository implementa SettingRepository en memoria.
// Se usa cuando el servicio arranca sin base de datos y en tests.
type SettingMemoryRepository struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

// NewSettingMemoryRepository crea un repositorio en memoria vacío
func NewSettingMemoryRepository() port.SettingRepository {
	return &SettingMemoryRepository{
		values: make(map[string]json.RawMessage),
	}
}

func (r *SettingMemoryRepository) Get(_ context.Context, key string) (json.RawMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.values[key]
	if !ok {
		return nil, entity.ErrSettingNotFound
	}
	return append(json.RawMessage(nil), value...), nil
}

func (r *SettingMemoryRepository) Set(_ context.Context, key string, value json.RawMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = append(json.RawMessage(nil), value...)
	return nil
}
