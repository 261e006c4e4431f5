package usecase

import (
	"context"
	"testing"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/infrastructure/persistence"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListActiveDebtsSortsByRemainingDesc(t *testing.T) {
	repo := persistence.NewDebtMemoryRepository()
	ctx := context.Background()

	chica, err := entity.NewDebt("Juan", decimal.NewFromInt(40), "Café", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, chica))

	grande, err := entity.NewDebt("María", decimal.NewFromInt(300), "Comidas", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, grande))

	pagada, err := entity.NewDebt("Pedro", decimal.NewFromInt(10), "Refresco", "")
	require.NoError(t, err)
	require.NoError(t, pagada.AddPayment(entity.NewPayment(decimal.NewFromInt(10), "")))
	require.NoError(t, repo.Save(ctx, pagada))

	list, err := NewListActiveDebtsUseCase(repo).Execute(ctx, "")
	require.NoError(t, err)

	// Las pagadas no aparecen; las activas van de mayor a menor saldo
	require.Len(t, list.Items, 2)
	assert.Equal(t, "María", list.Items[0].CustomerName)
	assert.Equal(t, "Juan", list.Items[1].CustomerName)
	assert.True(t, list.TotalRemaining.Equal(decimal.NewFromInt(340)))
}

func TestListActiveDebtsSearchMatchesNameAndConcept(t *testing.T) {
	repo := persistence.NewDebtMemoryRepository()
	ctx := context.Background()

	porNombre, err := entity.NewDebt("María López", decimal.NewFromInt(50), "Comidas", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, porNombre))

	porConcepto, err := entity.NewDebt("Juan", decimal.NewFromInt(60), "Tamales de María", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, porConcepto))

	otra, err := entity.NewDebt("Pedro", decimal.NewFromInt(70), "Refrescos", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, otra))

	list, err := NewListActiveDebtsUseCase(repo).Execute(ctx, "maría")
	require.NoError(t, err)
	assert.Equal(t, 2, list.TotalCount)
}
