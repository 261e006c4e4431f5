package response

// ClearStatsResponse reporta cuántos registros limpió el borrado
type ClearStatsResponse struct {
	OrdersDeleted    int `json:"orders_deleted"`
	SnapshotsDeleted int `json:"snapshots_deleted"`
}
