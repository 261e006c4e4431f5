package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category representa la categoría de un producto del menú
type Category string

const (
	CategoryDesayunos Category = "desayunos"
	CategoryAntojitos Category = "antojitos"
	CategoryGuisados  Category = "guisados"
	CategoryBebidas   Category = "bebidas"
)

// Categories lista las cuatro categorías válidas en orden fijo
func Categories() []Category {
	return []Category{CategoryDesayunos, CategoryAntojitos, CategoryGuisados, CategoryBebidas}
}

// IsValid indica si la categoría es una de las cuatro conocidas
func (c Category) IsValid() bool {
	switch c {
	case CategoryDesayunos, CategoryAntojitos, CategoryGuisados, CategoryBebidas:
		return true
	}
	return false
}

// Complement es un extra opcional del producto con precio adicional
type Complement struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Option es una variante del producto sin costo (ej: Plátanos → Enteros/Rodajas)
type Option struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// MenuItem representa un producto del menú (Aggregate Root)
type MenuItem struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Category    Category        `json:"category"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Description string          `json:"description"`
	Complements []Complement    `json:"complements"`
	Options     []Option        `json:"options"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewMenuItem crea un producto validado. Los complementos sin nombre o con
// precio negativo y las opciones sin valores se descartan, igual que hace la
// captura del menú.
func NewMenuItem(name string, category Category, basePrice decimal.Decimal, description string, complements []Complement, options []Option) (*MenuItem, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if basePrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &MenuItem{
		ID:          uuid.New(),
		Name:        name,
		Category:    category,
		BasePrice:   basePrice,
		Description: description,
		Complements: filterComplements(complements),
		Options:     filterOptions(options),
		CreatedAt:   time.Now(),
	}, nil
}

func filterComplements(complements []Complement) []Complement {
	valid := make([]Complement, 0, len(complements))
	for _, c := range complements {
		if c.Name == "" || c.Price.LessThan(decimal.Zero) {
			continue
		}
		valid = append(valid, c)
	}
	return valid
}

func filterOptions(options []Option) []Option {
	valid := make([]Option, 0, len(options))
	for _, o := range options {
		if o.Name == "" || len(o.Values) == 0 {
			continue
		}
		valid = append(valid, o)
	}
	return valid
}

// ComplementByName busca un complemento por nombre
func (m *MenuItem) ComplementByName(name string) (Complement, bool) {
	for _, c := range m.Complements {
		if c.Name == name {
			return c, true
		}
	}
	return Complement{}, false
}
