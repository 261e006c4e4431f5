package request

import "github.com/shopspring/decimal"

// ComplementRequest representa un complemento dentro del producto
type ComplementRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OptionRequest representa una opción del producto y sus valores posibles
type OptionRequest struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// SaveMenuItemRequest request para crear o actualizar un producto del menú
type SaveMenuItemRequest struct {
	Name        string              `json:"name" binding:"required"`
	Category    string              `json:"category" binding:"required"`
	BasePrice   decimal.Decimal     `json:"base_price"`
	Description string              `json:"description,omitempty"`
	Complements []ComplementRequest `json:"complements,omitempty"`
	Options     []OptionRequest     `json:"options,omitempty"`
}
