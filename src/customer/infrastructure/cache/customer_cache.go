package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/port"
)

// CustomersKey es la llave del directorio dentro de settings
const CustomersKey = "customers"

// CustomerCache cache en memoria del directorio de clientes guardados.
// El almacén de settings sigue siendo la fuente de verdad; el cache se
// rellena al arrancar y se reescribe en cada alta o baja.
type CustomerCache struct {
	mu     sync.RWMutex
	names  []string
	loaded bool
}

// NewCustomerCache crea un cache vacío, aún sin cargar
func NewCustomerCache() *CustomerCache {
	return &CustomerCache{}
}

// Warm carga el directorio desde el almacén de settings.
// Una llave ausente cuenta como directorio vacío, no como error.
func (c *CustomerCache) Warm(ctx context.Context, settings port.SettingRepository) error {
	log.Println("Cargando directorio de clientes en cache...")

	raw, err := settings.Get(ctx, CustomersKey)
	if errors.Is(err, entity.ErrSettingNotFound) {
		c.Replace([]string{})
		log.Println("Directorio de clientes vacío")
		return nil
	}
	if err != nil {
		log.Printf("Warning: could not load customers: %v", err)
		return err
	}

	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		log.Printf("Warning: corrupt customers setting: %v", err)
		return err
	}

	c.Replace(names)
	log.Printf("Cargados %d clientes en cache", len(names))
	return nil
}

// Get devuelve una copia del directorio y si ya fue cargado
func (c *CustomerCache) Get() ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, false
	}
	return append([]string(nil), c.names...), true
}

// Replace reescribe el directorio completo
func (c *CustomerCache) Replace(names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.names = append([]string(nil), names...)
	c.loaded = true
}
