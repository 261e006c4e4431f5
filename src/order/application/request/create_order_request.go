package request

import "github.com/google/uuid"

// CreateOrderRequest request para levantar un pedido desde un producto del menú.
// Complements lleva los nombres de los complementos elegidos; Options mapea
// nombre de opción → valor elegido.
type CreateOrderRequest struct {
	MenuItemID    uuid.UUID         `json:"menu_item_id" binding:"required"`
	CustomerName  string            `json:"customer_name" binding:"required"`
	ForNow        bool              `json:"for_now"`
	DeliveryTime  string            `json:"delivery_time,omitempty"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
	Notes         string            `json:"notes,omitempty"`
	Complements   []string          `json:"complements,omitempty"`
	Options       map[string]string `json:"options,omitempty"`
}
