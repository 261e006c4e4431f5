package entity

import "errors"

var (
	ErrNameRequired    = errors.New("name is required")
	ErrInvalidCategory = errors.New("category must be one of: desayunos, antojitos, guisados, bebidas")
	ErrInvalidPrice    = errors.New("base_price must be greater than or equal to 0")
	ErrMenuItemNotFound = errors.New("menu item not found")
)
