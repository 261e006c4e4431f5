package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDebtValidation(t *testing.T) {
	_, err := NewDebt("", decimal.NewFromInt(100), "Tacos", "")
	assert.ErrorIs(t, err, ErrCustomerNameRequired)

	_, err = NewDebt("María", decimal.NewFromInt(100), "", "")
	assert.ErrorIs(t, err, ErrConceptRequired)

	_, err = NewDebt("María", decimal.Zero, "Tacos", "")
	assert.ErrorIs(t, err, ErrInvalidDebtAmount)

	_, err = NewDebt("María", decimal.NewFromInt(-5), "Tacos", "")
	assert.ErrorIs(t, err, ErrInvalidDebtAmount)

	debt, err := NewDebt("María", decimal.NewFromInt(100), "Tacos", "555-1234")
	require.NoError(t, err)
	assert.Equal(t, DebtStatusActive, debt.Status)
	assert.Empty(t, debt.Payments)
	assert.True(t, debt.Remaining().Equal(decimal.NewFromInt(100)))
}

func TestDebtPaymentSequence(t *testing.T) {
	debt, err := NewDebt("Juan", decimal.NewFromInt(200), "Fiado de la semana", "")
	require.NoError(t, err)

	require.NoError(t, debt.AddPayment(NewPayment(decimal.NewFromInt(80), "")))
	assert.Equal(t, DebtStatusActive, debt.Status)
	assert.True(t, debt.Remaining().Equal(decimal.NewFromInt(120)))

	require.NoError(t, debt.AddPayment(NewPayment(decimal.NewFromInt(70), "")))
	assert.Equal(t, DebtStatusActive, debt.Status)
	assert.True(t, debt.Remaining().Equal(decimal.NewFromInt(50)))

	// El abono exacto del saldo restante liquida la deuda
	require.NoError(t, debt.AddPayment(NewPayment(decimal.NewFromInt(50), "liquidación")))
	assert.Equal(t, DebtStatusPaid, debt.Status)
	assert.True(t, debt.Remaining().IsZero())
	assert.Len(t, debt.Payments, 3)
}

func TestDebtRejectsExcessPaymentUnchanged(t *testing.T) {
	debt, err := NewDebt("Juan", decimal.NewFromInt(100), "Fiado", "")
	require.NoError(t, err)
	require.NoError(t, debt.AddPayment(NewPayment(decimal.NewFromInt(40), "")))

	err = debt.AddPayment(NewPayment(decimal.NewFromInt(61), ""))
	assert.ErrorIs(t, err, ErrPaymentExceedsRemaining)

	// La deuda no cambia tras el rechazo
	assert.Len(t, debt.Payments, 1)
	assert.Equal(t, DebtStatusActive, debt.Status)
	assert.True(t, debt.Remaining().Equal(decimal.NewFromInt(60)))
}

func TestDebtRejectsNonPositivePayment(t *testing.T) {
	debt, err := NewDebt("Juan", decimal.NewFromInt(100), "Fiado", "")
	require.NoError(t, err)

	assert.ErrorIs(t, debt.AddPayment(NewPayment(decimal.Zero, "")), ErrInvalidPaymentAmount)
	assert.ErrorIs(t, debt.AddPayment(NewPayment(decimal.NewFromInt(-10), "")), ErrInvalidPaymentAmount)
	assert.Empty(t, debt.Payments)
}

func TestDebtTotalPaidWithNilPayments(t *testing.T) {
	debt := &Debt{Amount: decimal.NewFromInt(50)}
	assert.True(t, debt.TotalPaid().IsZero())
	assert.True(t, debt.Remaining().Equal(decimal.NewFromInt(50)))
}

func TestDebtIsOverdue(t *testing.T) {
	debt, err := NewDebt("Pedro", decimal.NewFromInt(30), "Café", "")
	require.NoError(t, err)

	now := debt.CreatedAt
	assert.False(t, debt.IsOverdue(now.Add(29*24*time.Hour)))
	assert.False(t, debt.IsOverdue(now.Add(30*24*time.Hour)))
	assert.True(t, debt.IsOverdue(now.Add(30*24*time.Hour+time.Minute)))
}

func TestDebtPaymentSuggestions(t *testing.T) {
	debt, err := NewDebt("Lupita", decimal.NewFromInt(150), "Guisados", "")
	require.NoError(t, err)
	require.NoError(t, debt.AddPayment(NewPayment(decimal.NewFromInt(50), "")))

	assert.True(t, debt.HalfOfRemaining().Equal(decimal.NewFromInt(50)))
	assert.True(t, debt.FullOfRemaining().Equal(decimal.NewFromInt(100)))
}
