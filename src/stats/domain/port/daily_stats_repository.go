package port

import (
	"context"

	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"
)

// DailyStatsRepository define el contrato para los cierres de día
type DailyStatsRepository interface {
	// SaveSnapshot inserta o reemplaza el cierre de su fecha
	SaveSnapshot(ctx context.Context, snapshot *entity.StatsSnapshot) error
	FindByDate(ctx context.Context, date string) (*entity.StatsSnapshot, error)
	ListAll(ctx context.Context) ([]*entity.StatsSnapshot, error)
	// DeleteAll borra todos los cierres y devuelve cuántos eliminó
	DeleteAll(ctx context.Context) (int, error)
}
