package response

import (
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"

	"github.com/shopspring/decimal"
)

// PendingOrderResponse es un pedido pendiente con su estado de urgencia
type PendingOrderResponse struct {
	*entity.Order
	Urgent bool `json:"urgent"`
}

// UrgentOrderResponse es un pedido urgente con los minutos que restan
type UrgentOrderResponse struct {
	*entity.Order
	MinutesRemaining int `json:"minutes_remaining"`
}

// OrderListResponse agrupa una lista de pedidos con su total acumulado
type OrderListResponse struct {
	Items       []PendingOrderResponse `json:"items"`
	TotalCount  int                    `json:"total_count"`
	TotalAmount decimal.Decimal        `json:"total_amount"`
}

// CompletedOrderListResponse agrupa los pedidos completados del día
type CompletedOrderListResponse struct {
	Items       []*entity.Order `json:"items"`
	TotalCount  int             `json:"total_count"`
	TotalEarned decimal.Decimal `json:"total_earned"`
}
