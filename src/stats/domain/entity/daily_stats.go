package entity

import (
	menuentity "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	orderentity "github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"

	"github.com/shopspring/decimal"
)

// DateLayout es el formato de fecha de todos los resúmenes
const DateLayout = "2006-01-02"

// ProductStat acumula las ventas de un producto dentro de un período
type ProductStat struct {
	Name     string              `json:"name"`
	Category menuentity.Category `json:"category"`
	Count    int                 `json:"count"`
	Revenue  decimal.Decimal     `json:"revenue"`
}

// DailyStats es el resumen de ventas de un día.
// Los mapas siempre traen todas sus llaves, aun en cero, para que el
// cliente no tenga que distinguir ausencia de cero.
type DailyStats struct {
	Date           string                                   `json:"date"`
	TotalRevenue   decimal.Decimal                          `json:"total_revenue"`
	TotalOrders    int                                      `json:"total_orders"`
	AverageOrder   decimal.Decimal                          `json:"average_order"`
	PaymentMethods map[orderentity.PaymentMethod]decimal.Decimal `json:"payment_methods"`
	CategorySales  map[menuentity.Category]decimal.Decimal  `json:"category_sales"`
	HourlySales    [24]decimal.Decimal                      `json:"hourly_sales"`
	TopProducts    []ProductStat                            `json:"top_products"`
}

// ConsolidatedStats es el resumen de varios períodos sumados.
// PeriodData conserva el ingreso de cada período de entrada, en el
// mismo orden. No hay desglose por hora a esta granularidad.
type ConsolidatedStats struct {
	TotalRevenue   decimal.Decimal                          `json:"total_revenue"`
	TotalOrders    int                                      `json:"total_orders"`
	AverageOrder   decimal.Decimal                          `json:"average_order"`
	PaymentMethods map[orderentity.PaymentMethod]decimal.Decimal `json:"payment_methods"`
	CategorySales  map[menuentity.Category]decimal.Decimal  `json:"category_sales"`
	TopProducts    []ProductStat                            `json:"top_products"`
	PeriodData     []decimal.Decimal                        `json:"period_data"`
}

// PeriodSummary es la vista común que el consolidador acepta: un día o
// un período ya consolidado se suman igual.
type PeriodSummary struct {
	TotalRevenue   decimal.Decimal
	TotalOrders    int
	PaymentMethods map[orderentity.PaymentMethod]decimal.Decimal
	CategorySales  map[menuentity.Category]decimal.Decimal
	Products       []ProductStat
}

// Period proyecta el resumen diario a la vista consolidable
func (s DailyStats) Period() PeriodSummary {
	return PeriodSummary{
		TotalRevenue:   s.TotalRevenue,
		TotalOrders:    s.TotalOrders,
		PaymentMethods: s.PaymentMethods,
		CategorySales:  s.CategorySales,
		Products:       s.TopProducts,
	}
}

// Period proyecta el resumen consolidado a la vista consolidable
func (s ConsolidatedStats) Period() PeriodSummary {
	return PeriodSummary{
		TotalRevenue:   s.TotalRevenue,
		TotalOrders:    s.TotalOrders,
		PaymentMethods: s.PaymentMethods,
		CategorySales:  s.CategorySales,
		Products:       s.TopProducts,
	}
}

// ZeroPaymentMethods crea el mapa de métodos de pago con todo en cero
func ZeroPaymentMethods() map[orderentity.PaymentMethod]decimal.Decimal {
	methods := make(map[orderentity.PaymentMethod]decimal.Decimal, 3)
	for _, m := range orderentity.PaymentMethods() {
		methods[m] = decimal.Zero
	}
	return methods
}

// ZeroCategorySales crea el mapa de categorías con todo en cero
func ZeroCategorySales() map[menuentity.Category]decimal.Decimal {
	categories := make(map[menuentity.Category]decimal.Decimal, 4)
	for _, c := range menuentity.Categories() {
		categories[c] = decimal.Zero
	}
	return categories
}
