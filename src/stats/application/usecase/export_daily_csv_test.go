package usecase

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	menuentity "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	orderentity "github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	orderpersistence "github.com/angelsaidmejia/paneldecontrol/src/order/infrastructure/persistence"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saveCompleted(t *testing.T, repo interface {
	Save(ctx context.Context, order *orderentity.Order) error
}, product string, total string, completedAt time.Time) {
	t.Helper()
	price, err := decimal.NewFromString(total)
	require.NoError(t, err)
	order := &orderentity.Order{
		ID:            uuid.New(),
		CustomerName:  "Cliente",
		ProductName:   product,
		Category:      menuentity.CategoryAntojitos,
		TotalPrice:    price,
		ForNow:        true,
		PaymentMethod: orderentity.PaymentEfectivo,
		Status:        orderentity.OrderStatusCompleted,
		CreatedAt:     completedAt.Add(-time.Hour),
		CompletedAt:   &completedAt,
	}
	require.NoError(t, repo.Save(context.Background(), order))
}

func TestExportDailyCSVRoundsAtBoundary(t *testing.T) {
	repo := orderpersistence.NewOrderMemoryRepository()
	day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	// Dos tercios y un tercio del total: los porcentajes redondean a dos
	// decimales solo en el archivo
	saveCompleted(t, repo, "Huarache", "100", day)
	saveCompleted(t, repo, "Atole", "50", day.Add(time.Hour))

	uc := NewExportDailyCSVUseCase(repo, time.UTC)
	data, date, err := uc.Execute(context.Background(), "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", date)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Producto", "Cantidad", "Ingresos", "% del Total"}, records[0])
	assert.Equal(t, []string{"Huarache", "1", "100.00", "66.67"}, records[1])
	assert.Equal(t, []string{"Atole", "1", "50.00", "33.33"}, records[2])
}

func TestExportDailyCSVEmptyDayOnlyHeader(t *testing.T) {
	repo := orderpersistence.NewOrderMemoryRepository()
	uc := NewExportDailyCSVUseCase(repo, time.UTC)

	data, _, err := uc.Execute(context.Background(), "2026-03-10")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestExportDailyCSVValidatesDate(t *testing.T) {
	repo := orderpersistence.NewOrderMemoryRepository()
	uc := NewExportDailyCSVUseCase(repo, time.UTC)

	_, _, err := uc.Execute(context.Background(), "10/03/2026")
	assert.ErrorIs(t, err, entity.ErrInvalidDate)
}
