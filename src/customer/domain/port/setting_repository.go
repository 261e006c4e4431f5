package port

import (
	"context"
	"encoding/json"
)

// SettingRepository define el contrato del almacén de configuración:
// valores JSON arbitrarios keyed por nombre, con upsert por llave.
type SettingRepository interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
}
