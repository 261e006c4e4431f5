package entity

import "errors"

var (
	ErrCustomerNameRequired = errors.New("customer_name is required")
	ErrInvalidCategory      = errors.New("category must be one of: desayunos, antojitos, guisados, bebidas")
	ErrInvalidTotalPrice    = errors.New("total_price must be greater than or equal to 0")
	ErrInvalidPaymentMethod = errors.New("payment_method must be one of: efectivo, transferencia, deuda")
	ErrDeliveryTimeRequired = errors.New("delivery_time is required unless the order is for now")
	ErrInvalidDeliveryTime  = errors.New("delivery_time must have HH:MM format")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderNotPending      = errors.New("order is not in pending state")
)
