package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	orderport "github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/service"

	"github.com/shopspring/decimal"
)

// ExportDailyCSVUseCase caso de uso para exportar el día como CSV.
// El redondeo a dos decimales ocurre solo aquí, en la frontera de
// exportación; los cálculos internos conservan la precisión completa.
type ExportDailyCSVUseCase struct {
	orderRepo orderport.OrderRepository
	location  *time.Location
}

// NewExportDailyCSVUseCase crea una nueva instancia del caso de uso
func NewExportDailyCSVUseCase(orderRepo orderport.OrderRepository, location *time.Location) *ExportDailyCSVUseCase {
	return &ExportDailyCSVUseCase{
		orderRepo: orderRepo,
		location:  location,
	}
}

// Execute genera el CSV de productos vendidos en la fecha dada.
// Devuelve también la fecha resuelta, por si venía vacía.
func (uc *ExportDailyCSVUseCase) Execute(ctx context.Context, date string) ([]byte, string, error) {
	if date == "" {
		date = time.Now().In(uc.location).Format(entity.DateLayout)
	}
	if _, err := time.ParseInLocation(entity.DateLayout, date, uc.location); err != nil {
		return nil, "", entity.ErrInvalidDate
	}

	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("error listing orders: %w", err)
	}

	stats := service.ComputeDailyStats(orders, date, uc.location)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Producto", "Cantidad", "Ingresos", "% del Total"}); err != nil {
		return nil, "", fmt.Errorf("error writing csv header: %w", err)
	}

	hundred := decimal.NewFromInt(100)
	for _, product := range stats.TopProducts {
		percentage := decimal.Zero
		if stats.TotalRevenue.IsPositive() {
			percentage = product.Revenue.Mul(hundred).Div(stats.TotalRevenue)
		}
		record := []string{
			product.Name,
			strconv.Itoa(product.Count),
			product.Revenue.StringFixed(2),
			percentage.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return nil, "", fmt.Errorf("error writing csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", fmt.Errorf("error flushing csv: %w", err)
	}
	return buf.Bytes(), date, nil
}
