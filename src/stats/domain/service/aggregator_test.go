package service

import (
	"testing"
	"time"

	menuentity "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	orderentity "github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedOrder(t *testing.T, product string, category menuentity.Category, total int64, method orderentity.PaymentMethod, completedAt time.Time) *orderentity.Order {
	t.Helper()
	order := &orderentity.Order{
		ID:            uuid.New(),
		CustomerName:  "Cliente",
		ProductName:   product,
		Category:      category,
		TotalPrice:    decimal.NewFromInt(total),
		ForNow:        true,
		PaymentMethod: method,
		Status:        orderentity.OrderStatusCompleted,
		CreatedAt:     completedAt.Add(-time.Hour),
		CompletedAt:   &completedAt,
	}
	return order
}

func TestComputeDailyStatsEmptyIsZeroValued(t *testing.T) {
	stats := ComputeDailyStats(nil, "2026-03-10", time.UTC)

	assert.Equal(t, "2026-03-10", stats.Date)
	assert.Zero(t, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.True(t, stats.AverageOrder.IsZero())
	assert.NotNil(t, stats.TopProducts)
	assert.Empty(t, stats.TopProducts)

	require.Len(t, stats.PaymentMethods, 3)
	for method, amount := range stats.PaymentMethods {
		assert.True(t, amount.IsZero(), "método %s debería estar en cero", method)
	}
	require.Len(t, stats.CategorySales, 4)
	for category, amount := range stats.CategorySales {
		assert.True(t, amount.IsZero(), "categoría %s debería estar en cero", category)
	}
	for hour, amount := range stats.HourlySales {
		assert.True(t, amount.IsZero(), "hora %d debería estar en cero", hour)
	}
}

func TestComputeDailyStatsScenario(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	orders := []*orderentity.Order{
		completedOrder(t, "Sopes", menuentity.CategoryAntojitos, 100, orderentity.PaymentEfectivo, day.Add(9*time.Hour+15*time.Minute)),
		completedOrder(t, "Agua de horchata", menuentity.CategoryBebidas, 50, orderentity.PaymentDeuda, day.Add(14*time.Hour+40*time.Minute)),
	}

	stats := ComputeDailyStats(orders, "2026-03-10", time.UTC)

	assert.Equal(t, 2, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(150)))
	assert.True(t, stats.AverageOrder.Equal(decimal.NewFromInt(75)))

	assert.True(t, stats.CategorySales[menuentity.CategoryAntojitos].Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.CategorySales[menuentity.CategoryBebidas].Equal(decimal.NewFromInt(50)))
	assert.True(t, stats.CategorySales[menuentity.CategoryDesayunos].IsZero())
	assert.True(t, stats.CategorySales[menuentity.CategoryGuisados].IsZero())

	assert.True(t, stats.PaymentMethods[orderentity.PaymentEfectivo].Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.PaymentMethods[orderentity.PaymentTransferencia].IsZero())
	assert.True(t, stats.PaymentMethods[orderentity.PaymentDeuda].Equal(decimal.NewFromInt(50)))

	assert.True(t, stats.HourlySales[9].Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.HourlySales[14].Equal(decimal.NewFromInt(50)))
	for hour, amount := range stats.HourlySales {
		if hour == 9 || hour == 14 {
			continue
		}
		assert.True(t, amount.IsZero(), "hora %d debería estar en cero", hour)
	}
}

func TestComputeDailyStatsSkipsPendingAndOtherDays(t *testing.T) {
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	otherDay := day.AddDate(0, 0, 1)

	pending := completedOrder(t, "Café", menuentity.CategoryBebidas, 20, orderentity.PaymentEfectivo, day)
	pending.Status = orderentity.OrderStatusPending
	pending.CompletedAt = nil

	orders := []*orderentity.Order{
		pending,
		completedOrder(t, "Café", menuentity.CategoryBebidas, 20, orderentity.PaymentEfectivo, otherDay),
		completedOrder(t, "Café", menuentity.CategoryBebidas, 20, orderentity.PaymentEfectivo, day),
	}

	stats := ComputeDailyStats(orders, "2026-03-10", time.UTC)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(20)))
}

func TestComputeDailyStatsSkipsUnknownCategory(t *testing.T) {
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	order := completedOrder(t, "Especial", "postres", 40, orderentity.PaymentEfectivo, day)

	stats := ComputeDailyStats([]*orderentity.Order{order}, "2026-03-10", time.UTC)

	// El total sí cuenta; solo el desglose por categoría lo omite
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(40)))
	require.Len(t, stats.CategorySales, 4)
	for _, amount := range stats.CategorySales {
		assert.True(t, amount.IsZero())
	}
}

func TestComputeDailyStatsHourlySumEqualsTotal(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	orders := []*orderentity.Order{
		completedOrder(t, "Sopes", menuentity.CategoryAntojitos, 35, orderentity.PaymentEfectivo, day.Add(8*time.Hour)),
		completedOrder(t, "Sopes", menuentity.CategoryAntojitos, 35, orderentity.PaymentEfectivo, day.Add(8*time.Hour+30*time.Minute)),
		completedOrder(t, "Tamal", menuentity.CategoryDesayunos, 18, orderentity.PaymentTransferencia, day.Add(19*time.Hour)),
	}

	stats := ComputeDailyStats(orders, "2026-03-10", time.UTC)

	sum := decimal.Zero
	for _, amount := range stats.HourlySales {
		sum = sum.Add(amount)
	}
	assert.True(t, sum.Equal(stats.TotalRevenue))
}

func TestComputeDailyStatsProductSortStable(t *testing.T) {
	day := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	orders := []*orderentity.Order{
		completedOrder(t, "Tamal", menuentity.CategoryDesayunos, 30, orderentity.PaymentEfectivo, day),
		completedOrder(t, "Atole", menuentity.CategoryBebidas, 30, orderentity.PaymentEfectivo, day),
		completedOrder(t, "Guisado", menuentity.CategoryGuisados, 80, orderentity.PaymentEfectivo, day),
	}

	stats := ComputeDailyStats(orders, "2026-03-10", time.UTC)

	require.Len(t, stats.TopProducts, 3)
	assert.Equal(t, "Guisado", stats.TopProducts[0].Name)
	// Empate de ingresos: gana el que apareció primero
	assert.Equal(t, "Tamal", stats.TopProducts[1].Name)
	assert.Equal(t, "Atole", stats.TopProducts[2].Name)
}

func dailyFor(t *testing.T, date string, orders []*orderentity.Order) entity.DailyStats {
	t.Helper()
	return ComputeDailyStats(orders, date, time.UTC)
}

func TestConsolidateSumsAndPeriodData(t *testing.T) {
	dayA := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	dayB := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)
	orders := []*orderentity.Order{
		completedOrder(t, "Sopes", menuentity.CategoryAntojitos, 100, orderentity.PaymentEfectivo, dayA),
		completedOrder(t, "Sopes", menuentity.CategoryAntojitos, 60, orderentity.PaymentDeuda, dayB),
		completedOrder(t, "Atole", menuentity.CategoryBebidas, 40, orderentity.PaymentEfectivo, dayB),
	}

	a := dailyFor(t, "2026-03-10", orders)
	b := dailyFor(t, "2026-03-11", orders)

	consolidated := Consolidate([]entity.PeriodSummary{a.Period(), b.Period()})

	assert.True(t, consolidated.TotalRevenue.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 3, consolidated.TotalOrders)
	assert.True(t, consolidated.PaymentMethods[orderentity.PaymentEfectivo].Equal(decimal.NewFromInt(140)))
	assert.True(t, consolidated.PaymentMethods[orderentity.PaymentDeuda].Equal(decimal.NewFromInt(60)))

	// Un ingreso por período de entrada, en el orden de entrada
	require.Len(t, consolidated.PeriodData, 2)
	assert.True(t, consolidated.PeriodData[0].Equal(decimal.NewFromInt(100)))
	assert.True(t, consolidated.PeriodData[1].Equal(decimal.NewFromInt(100)))

	// Sopes acumula 160 entre ambos días y queda arriba
	require.NotEmpty(t, consolidated.TopProducts)
	assert.Equal(t, "Sopes", consolidated.TopProducts[0].Name)
	assert.Equal(t, 2, consolidated.TopProducts[0].Count)
	assert.True(t, consolidated.TopProducts[0].Revenue.Equal(decimal.NewFromInt(160)))
}

func TestConsolidateAssociativeForSums(t *testing.T) {
	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	mk := func(total int64) entity.PeriodSummary {
		order := completedOrder(t, "Sopes", menuentity.CategoryAntojitos, total, orderentity.PaymentEfectivo, day)
		return dailyFor(t, "2026-03-10", []*orderentity.Order{order}).Period()
	}

	a, b, c := mk(10), mk(20), mk(30)

	flat := Consolidate([]entity.PeriodSummary{a, b, c})
	nested := Consolidate([]entity.PeriodSummary{a, Consolidate([]entity.PeriodSummary{b, c}).Period()})

	assert.True(t, flat.TotalRevenue.Equal(nested.TotalRevenue))
	assert.Equal(t, flat.TotalOrders, nested.TotalOrders)
	assert.True(t, flat.AverageOrder.Equal(nested.AverageOrder))
	for method, amount := range flat.PaymentMethods {
		assert.True(t, amount.Equal(nested.PaymentMethods[method]))
	}
	for category, amount := range flat.CategorySales {
		assert.True(t, amount.Equal(nested.CategorySales[category]))
	}
}

func TestConsolidateEmptyHasZeroAverage(t *testing.T) {
	consolidated := Consolidate(nil)
	assert.Zero(t, consolidated.TotalOrders)
	assert.True(t, consolidated.TotalRevenue.IsZero())
	assert.True(t, consolidated.AverageOrder.IsZero())
	assert.Empty(t, consolidated.PeriodData)
}
