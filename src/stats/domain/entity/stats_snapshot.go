package entity

import "time"

// StatsSnapshot es el resumen de un día guardado al cerrar la jornada
type StatsSnapshot struct {
	Date    string     `json:"date"`
	SavedAt time.Time  `json:"saved_at"`
	Stats   DailyStats `json:"stats"`
}

// NewStatsSnapshot crea el cierre de día fechado ahora
func NewStatsSnapshot(stats DailyStats) *StatsSnapshot {
	return &StatsSnapshot{
		Date:    stats.Date,
		SavedAt: time.Now(),
		Stats:   stats,
	}
}
