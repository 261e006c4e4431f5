package entity

import (
	"testing"
	"time"

	menuentity "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderValidation(t *testing.T) {
	price := decimal.NewFromInt(45)

	_, err := NewOrder("", "Chilaquiles", menuentity.CategoryDesayunos, price, "09:00", false, PaymentEfectivo, "", "")
	assert.ErrorIs(t, err, ErrCustomerNameRequired)

	_, err = NewOrder("Ana", "Chilaquiles", "postres", price, "09:00", false, PaymentEfectivo, "", "")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = NewOrder("Ana", "Chilaquiles", menuentity.CategoryDesayunos, decimal.NewFromInt(-1), "09:00", false, PaymentEfectivo, "", "")
	assert.ErrorIs(t, err, ErrInvalidTotalPrice)

	_, err = NewOrder("Ana", "Chilaquiles", menuentity.CategoryDesayunos, price, "09:00", false, "tarjeta", "", "")
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)

	_, err = NewOrder("Ana", "Chilaquiles", menuentity.CategoryDesayunos, price, "", false, PaymentEfectivo, "", "")
	assert.ErrorIs(t, err, ErrDeliveryTimeRequired)

	_, err = NewOrder("Ana", "Chilaquiles", menuentity.CategoryDesayunos, price, "9 en punto", false, PaymentEfectivo, "", "")
	assert.ErrorIs(t, err, ErrInvalidDeliveryTime)
}

func TestNewOrderForNowClearsDeliveryTime(t *testing.T) {
	order, err := NewOrder("Ana", "Café", menuentity.CategoryBebidas, decimal.NewFromInt(20), "10:30", true, PaymentEfectivo, "", "")
	require.NoError(t, err)
	assert.True(t, order.ForNow)
	assert.Empty(t, order.DeliveryTime)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Nil(t, order.CompletedAt)
}

func TestCompleteSetsCompletedAtExactlyOnce(t *testing.T) {
	order, err := NewOrder("Ana", "Café", menuentity.CategoryBebidas, decimal.NewFromInt(20), "", true, PaymentEfectivo, "", "")
	require.NoError(t, err)

	now := time.Date(2026, 3, 10, 14, 5, 0, 0, time.UTC)
	require.NoError(t, order.Complete(now))
	assert.Equal(t, OrderStatusCompleted, order.Status)
	require.NotNil(t, order.CompletedAt)
	assert.True(t, order.CompletedAt.Equal(now))
	assert.True(t, order.IsCompleted())

	// Completar dos veces falla y no mueve la marca de tiempo
	err = order.Complete(now.Add(time.Hour))
	assert.ErrorIs(t, err, ErrOrderNotPending)
	assert.True(t, order.CompletedAt.Equal(now))
}
