package entity

import (
	"time"

	menuentity "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod representa la forma de pago de un pedido
type PaymentMethod string

const (
	PaymentEfectivo      PaymentMethod = "efectivo"
	PaymentTransferencia PaymentMethod = "transferencia"
	PaymentDeuda         PaymentMethod = "deuda"
)

// PaymentMethods lista los tres métodos válidos en orden fijo
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentEfectivo, PaymentTransferencia, PaymentDeuda}
}

// IsValid indica si el método de pago es uno de los tres conocidos
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentEfectivo, PaymentTransferencia, PaymentDeuda:
		return true
	}
	return false
}

// OrderStatus representa el estado de un pedido
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
)

// DeliveryTimeLayout es el formato de la hora de entrega solicitada
const DeliveryTimeLayout = "15:04"

// Order representa un pedido del puesto (Aggregate Root).
// Un pedido es de un solo producto; los extras quedan descritos en el
// string de personalizaciones.
type Order struct {
	ID             uuid.UUID           `json:"id"`
	CustomerName   string              `json:"customer_name"`
	ProductName    string              `json:"product_name"`
	Category       menuentity.Category `json:"category"`
	TotalPrice     decimal.Decimal     `json:"total_price"`
	DeliveryTime   string              `json:"delivery_time,omitempty"` // vacío cuando ForNow
	ForNow         bool                `json:"for_now"`
	PaymentMethod  PaymentMethod       `json:"payment_method"`
	Status         OrderStatus         `json:"status"`
	Notes          string              `json:"notes,omitempty"`
	Customizations string              `json:"customizations,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
}

// NewOrder crea un pedido pendiente validado
func NewOrder(
	customerName string,
	productName string,
	category menuentity.Category,
	totalPrice decimal.Decimal,
	deliveryTime string,
	forNow bool,
	paymentMethod PaymentMethod,
	notes string,
	customizations string,
) (*Order, error) {
	if customerName == "" {
		return nil, ErrCustomerNameRequired
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if totalPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidTotalPrice
	}
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	if forNow {
		deliveryTime = ""
	} else {
		if deliveryTime == "" {
			return nil, ErrDeliveryTimeRequired
		}
		if _, err := time.Parse(DeliveryTimeLayout, deliveryTime); err != nil {
			return nil, ErrInvalidDeliveryTime
		}
	}

	return &Order{
		ID:             uuid.New(),
		CustomerName:   customerName,
		ProductName:    productName,
		Category:       category,
		TotalPrice:     totalPrice,
		DeliveryTime:   deliveryTime,
		ForNow:         forNow,
		PaymentMethod:  paymentMethod,
		Status:         OrderStatusPending,
		Notes:          notes,
		Customizations: customizations,
		CreatedAt:      time.Now(),
	}, nil
}

// Complete marca el pedido como completado.
// CompletedAt se setea exactamente en esta transición y en ninguna otra.
func (o *Order) Complete(now time.Time) error {
	if o.Status != OrderStatusPending {
		return ErrOrderNotPending
	}
	o.Status = OrderStatusCompleted
	o.CompletedAt = &now
	return nil
}

// IsCompleted indica si el pedido ya fue entregado
func (o *Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted && o.CompletedAt != nil
}
