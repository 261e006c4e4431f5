package service

import (
	"sort"
	"time"

	orderentity "github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"

	"github.com/shopspring/decimal"
)

// ComputeDailyStats arma el resumen de ventas de un día a partir de los
// pedidos. Solo cuentan los pedidos completados cuya hora de entrega
// real cae en la fecha pedida, evaluada en la zona horaria dada. Un día
// sin ventas produce un resumen en ceros, nunca mapas nil.
func ComputeDailyStats(orders []*orderentity.Order, date string, loc *time.Location) entity.DailyStats {
	stats := entity.DailyStats{
		Date:           date,
		TotalRevenue:   decimal.Zero,
		AverageOrder:   decimal.Zero,
		PaymentMethods: entity.ZeroPaymentMethods(),
		CategorySales:  entity.ZeroCategorySales(),
		TopProducts:    []entity.ProductStat{},
	}
	for i := range stats.HourlySales {
		stats.HourlySales[i] = decimal.Zero
	}

	type productAcc struct {
		stat  entity.ProductStat
		order int
	}
	products := make(map[string]*productAcc)
	nextOrder := 0

	for _, order := range orders {
		if !order.IsCompleted() {
			continue
		}
		completedAt := order.CompletedAt.In(loc)
		if completedAt.Format(entity.DateLayout) != date {
			continue
		}

		stats.TotalRevenue = stats.TotalRevenue.Add(order.TotalPrice)
		stats.TotalOrders++

		if order.PaymentMethod.IsValid() {
			stats.PaymentMethods[order.PaymentMethod] = stats.PaymentMethods[order.PaymentMethod].Add(order.TotalPrice)
		}
		// Categorías desconocidas se omiten sin afectar los totales
		if order.Category.IsValid() {
			stats.CategorySales[order.Category] = stats.CategorySales[order.Category].Add(order.TotalPrice)
		}
		stats.HourlySales[completedAt.Hour()] = stats.HourlySales[completedAt.Hour()].Add(order.TotalPrice)

		acc, ok := products[order.ProductName]
		if !ok {
			acc = &productAcc{
				stat: entity.ProductStat{
					Name:     order.ProductName,
					Category: order.Category,
					Revenue:  decimal.Zero,
				},
				order: nextOrder,
			}
			products[order.ProductName] = acc
			nextOrder++
		}
		acc.stat.Count++
		acc.stat.Revenue = acc.stat.Revenue.Add(order.TotalPrice)
	}

	if stats.TotalOrders > 0 {
		stats.AverageOrder = stats.TotalRevenue.Div(decimal.NewFromInt(int64(stats.TotalOrders)))
	}

	accs := make([]*productAcc, 0, len(products))
	for _, acc := range products {
		accs = append(accs, acc)
	}
	// Orden estable: a ingresos iguales gana el producto que apareció antes
	sort.SliceStable(accs, func(i, j int) bool {
		if !accs[i].stat.Revenue.Equal(accs[j].stat.Revenue) {
			return accs[i].stat.Revenue.GreaterThan(accs[j].stat.Revenue)
		}
		return accs[i].order < accs[j].order
	})
	for _, acc := range accs {
		stats.TopProducts = append(stats.TopProducts, acc.stat)
	}

	return stats
}

// Consolidate suma varios resúmenes de período en uno.
// El promedio se recalcula desde los totales sumados; los productos se
// reagrupan por nombre y se reordenan por ingreso. PeriodData conserva
// el ingreso de cada entrada en su orden original.
func Consolidate(summaries []entity.PeriodSummary) entity.ConsolidatedStats {
	consolidated := entity.ConsolidatedStats{
		TotalRevenue:   decimal.Zero,
		AverageOrder:   decimal.Zero,
		PaymentMethods: entity.ZeroPaymentMethods(),
		CategorySales:  entity.ZeroCategorySales(),
		TopProducts:    []entity.ProductStat{},
		PeriodData:     make([]decimal.Decimal, 0, len(summaries)),
	}

	type productAcc struct {
		stat  entity.ProductStat
		order int
	}
	products := make(map[string]*productAcc)
	nextOrder := 0

	for _, summary := range summaries {
		consolidated.TotalRevenue = consolidated.TotalRevenue.Add(summary.TotalRevenue)
		consolidated.TotalOrders += summary.TotalOrders
		consolidated.PeriodData = append(consolidated.PeriodData, summary.TotalRevenue)

		for method, amount := range summary.PaymentMethods {
			consolidated.PaymentMethods[method] = consolidated.PaymentMethods[method].Add(amount)
		}
		for category, amount := range summary.CategorySales {
			consolidated.CategorySales[category] = consolidated.CategorySales[category].Add(amount)
		}

		for _, product := range summary.Products {
			acc, ok := products[product.Name]
			if !ok {
				acc = &productAcc{
					stat: entity.ProductStat{
						Name:     product.Name,
						Category: product.Category,
						Revenue:  decimal.Zero,
					},
					order: nextOrder,
				}
				products[product.Name] = acc
				nextOrder++
			}
			acc.stat.Count += product.Count
			acc.stat.Revenue = acc.stat.Revenue.Add(product.Revenue)
		}
	}

	if consolidated.TotalOrders > 0 {
		consolidated.AverageOrder = consolidated.TotalRevenue.Div(decimal.NewFromInt(int64(consolidated.TotalOrders)))
	}

	accs := make([]*productAcc, 0, len(products))
	for _, acc := range products {
		accs = append(accs, acc)
	}
	sort.SliceStable(accs, func(i, j int) bool {
		if !accs[i].stat.Revenue.Equal(accs[j].stat.Revenue) {
			return accs[i].stat.Revenue.GreaterThan(accs[j].stat.Revenue)
		}
		return accs[i].order < accs[j].order
	})
	for _, acc := range accs {
		consolidated.TopProducts = append(consolidated.TopProducts, acc.stat)
	}

	return consolidated
}
