package entity

import (
	"testing"
	"time"

	menuentity "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingOrderAt(t *testing.T, deliveryTime string, forNow bool) *Order {
	t.Helper()
	order, err := NewOrder("Cliente", "Quesadilla", menuentity.CategoryAntojitos,
		decimal.NewFromInt(35), deliveryTime, forNow, PaymentEfectivo, "", "")
	require.NoError(t, err)
	return order
}

func TestIsUrgentForNowNeverUrgent(t *testing.T) {
	order := pendingOrderAt(t, "", true)
	now := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)
	assert.False(t, IsUrgent(order, now))
}

func TestIsUrgentBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	cases := []struct {
		name         string
		deliveryTime string
		urgent       bool
	}{
		{"hora ya pasada", "12:30", false},
		{"exactamente ahora", "13:00", false},
		{"falta 1 minuto", "13:01", true},
		{"falta 30 minutos", "13:30", true},
		{"falta 31 minutos", "13:31", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := pendingOrderAt(t, tc.deliveryTime, false)
			assert.Equal(t, tc.urgent, IsUrgent(order, now))
		})
	}
}

func TestMinutesUntilDelivery(t *testing.T) {
	now := time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC)

	order := pendingOrderAt(t, "13:45", false)
	minutes, ok := MinutesUntilDelivery(order, now)
	require.True(t, ok)
	assert.InDelta(t, 45, minutes, 0.001)

	forNow := pendingOrderAt(t, "", true)
	_, ok = MinutesUntilDelivery(forNow, now)
	assert.False(t, ok)

	// Hora ilegible: el pedido nunca es urgente
	broken := pendingOrderAt(t, "13:45", false)
	broken.DeliveryTime = "no-es-hora"
	_, ok = MinutesUntilDelivery(broken, now)
	assert.False(t, ok)
	assert.False(t, IsUrgent(broken, now))
}
