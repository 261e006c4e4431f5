package response

import (
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"

	"github.com/shopspring/decimal"
)

// DebtListItemResponse es una deuda con sus campos derivados ya resueltos
type DebtListItemResponse struct {
	*entity.Debt
	TotalPaid decimal.Decimal `json:"total_paid"`
	Remaining decimal.Decimal `json:"remaining"`
	Overdue   bool            `json:"overdue"`
}

// DebtListResponse respuesta del listado de deudas activas
type DebtListResponse struct {
	Items          []DebtListItemResponse `json:"items"`
	TotalCount     int                    `json:"total_count"`
	TotalRemaining decimal.Decimal        `json:"total_remaining"`
}
