package entity

import "errors"

var (
	ErrCustomerNameRequired = errors.New("customer_name is required")
	ErrConceptRequired      = errors.New("concept is required")
	ErrInvalidDebtAmount    = errors.New("amount must be greater than 0")
	ErrDebtNotFound         = errors.New("debt not found")

	// Errores de pago inválido: se devuelven al llamador para re-capturar
	// el monto, nunca se recorta el valor en silencio
	ErrInvalidPaymentAmount   = errors.New("payment amount must be greater than 0")
	ErrPaymentExceedsRemaining = errors.New("payment amount exceeds remaining balance")
)
