package entity

import "time"

// UrgencyWindowMinutes es la antelación con la que un pedido pendiente
// empieza a considerarse urgente respecto a su hora de entrega.
const UrgencyWindowMinutes = 30

// IsUrgent decide si un pedido pendiente es urgente: faltan entre 0
// (exclusivo) y 30 minutos (inclusive) para su hora de entrega de hoy.
// Los pedidos "para ahorita" y los que no tienen hora nunca son urgentes.
// Función pura; puede evaluarse cada minuto sin acumular estado.
func IsUrgent(o *Order, now time.Time) bool {
	minutes, ok := MinutesUntilDelivery(o, now)
	if !ok {
		return false
	}
	return minutes > 0 && minutes <= UrgencyWindowMinutes
}

// MinutesUntilDelivery calcula los minutos hasta la entrega del pedido,
// interpretando la hora HH:MM sobre el día calendario de now, en la zona
// horaria de now. El segundo valor es false cuando el pedido no tiene
// hora de entrega aplicable.
func MinutesUntilDelivery(o *Order, now time.Time) (float64, bool) {
	if o.ForNow || o.DeliveryTime == "" {
		return 0, false
	}

	parsed, err := time.Parse(DeliveryTimeLayout, o.DeliveryTime)
	if err != nil {
		return 0, false
	}

	delivery := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	return delivery.Sub(now).Minutes(), true
}
