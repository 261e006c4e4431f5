package response

import (
	"time"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
)

// MenuExportResponse es el formato de intercambio del menú completo.
// El shape {version, exportDate, restaurant, items} es el contrato del
// archivo exportado y del import.
type MenuExportResponse struct {
	Version    int                `json:"version"`
	ExportDate time.Time          `json:"exportDate"`
	Restaurant string             `json:"restaurant"`
	Items      []*entity.MenuItem `json:"items"`
}

// ImportMenuResponse resume el resultado de un import de menú
type ImportMenuResponse struct {
	ImportedCount int `json:"imported_count"`
}
