package usecase

import (
	"context"
	"testing"

	debtentity "github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"
	debtpersistence "github.com/angelsaidmejia/paneldecontrol/src/debt/infrastructure/persistence"
	menuentity "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	menupersistence "github.com/angelsaidmejia/paneldecontrol/src/menu/infrastructure/persistence"
	"github.com/angelsaidmejia/paneldecontrol/src/order/application/request"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	orderpersistence "github.com/angelsaidmejia/paneldecontrol/src/order/infrastructure/persistence"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreateOrderFixture(t *testing.T) (*CreateOrderUseCase, *menuentity.MenuItem, func() []*debtentity.Debt) {
	t.Helper()

	menuRepo := menupersistence.NewMenuItemMemoryRepository()
	orderRepo := orderpersistence.NewOrderMemoryRepository()
	debtRepo := debtpersistence.NewDebtMemoryRepository()

	product, err := menuentity.NewMenuItem(
		"Huarache",
		menuentity.CategoryAntojitos,
		decimal.NewFromInt(50),
		"",
		[]menuentity.Complement{
			{Name: "Queso extra", Price: decimal.NewFromInt(10)},
			{Name: "Carne", Price: decimal.NewFromInt(20)},
		},
		[]menuentity.Option{
			{Name: "Salsa", Values: []string{"Verde", "Roja"}},
		},
	)
	require.NoError(t, err)
	require.NoError(t, menuRepo.Save(context.Background(), product))

	listDebts := func() []*debtentity.Debt {
		debts, err := debtRepo.ListAll(context.Background())
		require.NoError(t, err)
		return debts
	}

	return NewCreateOrderUseCase(orderRepo, menuRepo, debtRepo), product, listDebts
}

func TestCreateOrderPriceIncludesComplements(t *testing.T) {
	uc, product, _ := newCreateOrderFixture(t)

	order, err := uc.Execute(context.Background(), &request.CreateOrderRequest{
		MenuItemID:    product.ID,
		CustomerName:  "Don Memo",
		ForNow:        true,
		PaymentMethod: "efectivo",
		Complements:   []string{"Queso extra", "Carne"},
		Options:       map[string]string{"Salsa": "Verde"},
	})
	require.NoError(t, err)

	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(80)))
	assert.Equal(t, "Huarache", order.ProductName)
	assert.Equal(t, "Con: Queso extra, Carne | Salsa: Verde", order.Customizations)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestCreateOrderUnknownComplementFails(t *testing.T) {
	uc, product, _ := newCreateOrderFixture(t)

	_, err := uc.Execute(context.Background(), &request.CreateOrderRequest{
		MenuItemID:    product.ID,
		CustomerName:  "Don Memo",
		ForNow:        true,
		PaymentMethod: "efectivo",
		Complements:   []string{"Aguacate"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Aguacate")
}

func TestCreateOrderWithDeudaCreatesDebt(t *testing.T) {
	uc, product, listDebts := newCreateOrderFixture(t)

	order, err := uc.Execute(context.Background(), &request.CreateOrderRequest{
		MenuItemID:    product.ID,
		CustomerName:  "Doña Chela",
		ForNow:        true,
		PaymentMethod: "deuda",
	})
	require.NoError(t, err)

	debts := listDebts()
	require.Len(t, debts, 1)
	assert.Equal(t, "Doña Chela", debts[0].CustomerName)
	assert.Equal(t, "Pedido: Huarache", debts[0].Concept)
	assert.True(t, debts[0].Amount.Equal(order.TotalPrice))
	assert.Equal(t, debtentity.DebtStatusActive, debts[0].Status)
}

func TestCreateOrderCashCreatesNoDebt(t *testing.T) {
	uc, product, listDebts := newCreateOrderFixture(t)

	_, err := uc.Execute(context.Background(), &request.CreateOrderRequest{
		MenuItemID:    product.ID,
		CustomerName:  "Don Memo",
		ForNow:        true,
		PaymentMethod: "efectivo",
	})
	require.NoError(t, err)
	assert.Empty(t, listDebts())
}

func TestCreateOrderMissingProductFails(t *testing.T) {
	uc, _, _ := newCreateOrderFixture(t)

	_, err := uc.Execute(context.Background(), &request.CreateOrderRequest{
		MenuItemID:    uuid.New(),
		CustomerName:  "Don Memo",
		ForNow:        true,
		PaymentMethod: "efectivo",
	})
	assert.ErrorIs(t, err, menuentity.ErrMenuItemNotFound)
}
