package entity

import "errors"

var (
	// ErrCustomerNameEmpty cuando el nombre llega vacío
	ErrCustomerNameEmpty = errors.New("customer name cannot be empty")

	// ErrCustomerAlreadyExists cuando el nombre ya está guardado
	ErrCustomerAlreadyExists = errors.New("customer already exists")

	// ErrCustomerNotFound cuando el nombre no está en el directorio
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrSettingNotFound cuando la llave no existe en settings
	ErrSettingNotFound = errors.New("setting not found")
)
