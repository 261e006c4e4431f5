package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/port"
)

// DailyStatsMemoryRepository implementa DailyStatsRepository en memoria.
// Se usa cuando el servicio arranca sin base de datos y en tests.
type DailyStatsMemoryRepository struct {
	mu        sync.RWMutex
	snapshots map[string]entity.StatsSnapshot
}

// NewDailyStatsMemoryRepository crea un repositorio en memoria vacío
func NewDailyStatsMemoryRepository() port.DailyStatsRepository {
	return &DailyStatsMemoryRepository{
		snapshots: make(map[string]entity.StatsSnapshot),
	}
}

func (r *DailyStatsMemoryRepository) SaveSnapshot(_ context.Context, snapshot *entity.StatsSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots[snapshot.Date] = *snapshot
	return nil
}

func (r *DailyStatsMemoryRepository) FindByDate(_ context.Context, date string) (*entity.StatsSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot, ok := r.snapshots[date]
	if !ok {
		return nil, entity.ErrSnapshotNotFound
	}
	copy := snapshot
	return &copy, nil
}

func (r *DailyStatsMemoryRepository) ListAll(_ context.Context) ([]*entity.StatsSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var snapshots []*entity.StatsSnapshot
	for _, snapshot := range r.snapshots {
		copy := snapshot
		snapshots = append(snapshots, &copy)
	}
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Date < snapshots[j].Date })
	return snapshots, nil
}

func (r *DailyStatsMemoryRepository) DeleteAll(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deleted := len(r.snapshots)
	r.snapshots = make(map[string]entity.StatsSnapshot)
	return deleted, nil
}
