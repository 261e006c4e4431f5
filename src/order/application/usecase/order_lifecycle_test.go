package usecase

import (
	"context"
	"testing"
	"time"

	menuentity "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"
	orderpersistence "github.com/angelsaidmejia/paneldecontrol/src/order/infrastructure/persistence"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func savedPendingOrder(t *testing.T, repo port.OrderRepository, deliveryTime string, forNow bool) *entity.Order {
	t.Helper()
	order, err := entity.NewOrder("Cliente", "Quesadilla", menuentity.CategoryAntojitos,
		decimal.NewFromInt(35), deliveryTime, forNow, entity.PaymentEfectivo, "", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), order))
	return order
}

func TestCompleteOrderTransitions(t *testing.T) {
	repo := orderpersistence.NewOrderMemoryRepository()
	order := savedPendingOrder(t, repo, "", true)
	uc := NewCompleteOrderUseCase(repo)
	ctx := context.Background()

	completed, err := uc.Execute(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	// El estado queda persistido y un segundo completado falla
	_, err = uc.Execute(ctx, order.ID)
	assert.ErrorIs(t, err, entity.ErrOrderNotPending)
}

func TestCancelOrderOnlyPending(t *testing.T) {
	repo := orderpersistence.NewOrderMemoryRepository()
	ctx := context.Background()

	pending := savedPendingOrder(t, repo, "", true)
	cancelUC := NewCancelOrderUseCase(repo)
	require.NoError(t, cancelUC.Execute(ctx, pending.ID))

	_, err := repo.FindByID(ctx, pending.ID)
	assert.ErrorIs(t, err, entity.ErrOrderNotFound)

	completed := savedPendingOrder(t, repo, "", true)
	_, err = NewCompleteOrderUseCase(repo).Execute(ctx, completed.ID)
	require.NoError(t, err)

	err = cancelUC.Execute(ctx, completed.ID)
	assert.ErrorIs(t, err, entity.ErrOrderNotPending)
}

func TestListPendingOrdersMarksUrgentAndTotals(t *testing.T) {
	repo := orderpersistence.NewOrderMemoryRepository()
	ctx := context.Background()

	soon := time.Now().Add(15 * time.Minute).Format(entity.DeliveryTimeLayout)
	savedPendingOrder(t, repo, soon, false)
	savedPendingOrder(t, repo, "", true)

	list, err := NewListPendingOrdersUseCase(repo, time.Local).Execute(ctx)
	require.NoError(t, err)

	require.Equal(t, 2, list.TotalCount)
	assert.True(t, list.TotalAmount.Equal(decimal.NewFromInt(70)))

	urgentCount := 0
	for _, item := range list.Items {
		if item.Urgent {
			urgentCount++
		}
	}
	assert.Equal(t, 1, urgentCount)
}

func TestListCompletedOrdersOnlyToday(t *testing.T) {
	repo := orderpersistence.NewOrderMemoryRepository()
	ctx := context.Background()

	today := savedPendingOrder(t, repo, "", true)
	require.NoError(t, today.Complete(time.Now()))
	require.NoError(t, repo.Save(ctx, today))

	yesterday := savedPendingOrder(t, repo, "", true)
	require.NoError(t, yesterday.Complete(time.Now().AddDate(0, 0, -1)))
	require.NoError(t, repo.Save(ctx, yesterday))

	list, err := NewListCompletedOrdersUseCase(repo, time.Local).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, list.TotalCount)
	assert.True(t, list.TotalEarned.Equal(decimal.NewFromInt(35)))
}
