package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItemValidation(t *testing.T) {
	_, err := NewMenuItem("", CategoryAntojitos, decimal.NewFromInt(30), "", nil, nil)
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = NewMenuItem("Pozole", "sopas", decimal.NewFromInt(30), "", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = NewMenuItem("Pozole", CategoryGuisados, decimal.NewFromInt(-1), "", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	item, err := NewMenuItem("Pozole", CategoryGuisados, decimal.Zero, "", nil, nil)
	require.NoError(t, err)
	assert.True(t, item.BasePrice.IsZero())
	assert.NotNil(t, item.Complements)
	assert.NotNil(t, item.Options)
}

func TestNewMenuItemFiltersInvalidExtras(t *testing.T) {
	complements := []Complement{
		{Name: "Queso", Price: decimal.NewFromInt(10)},
		{Name: "", Price: decimal.NewFromInt(5)},
		{Name: "Gratis", Price: decimal.Zero},
		{Name: "Negativo", Price: decimal.NewFromInt(-3)},
	}
	options := []Option{
		{Name: "Tamaño", Values: []string{"Chico", "Grande"}},
		{Name: "Sin valores", Values: nil},
		{Name: "", Values: []string{"x"}},
	}

	item, err := NewMenuItem("Pozole", CategoryGuisados, decimal.NewFromInt(60), "", complements, options)
	require.NoError(t, err)

	require.Len(t, item.Complements, 2)
	assert.Equal(t, "Queso", item.Complements[0].Name)
	assert.Equal(t, "Gratis", item.Complements[1].Name)

	require.Len(t, item.Options, 1)
	assert.Equal(t, "Tamaño", item.Options[0].Name)
}

func TestComplementByName(t *testing.T) {
	item, err := NewMenuItem("Huarache", CategoryAntojitos, decimal.NewFromInt(50), "",
		[]Complement{{Name: "Carne", Price: decimal.NewFromInt(20)}}, nil)
	require.NoError(t, err)

	carne, ok := item.ComplementByName("Carne")
	assert.True(t, ok)
	assert.True(t, carne.Price.Equal(decimal.NewFromInt(20)))

	_, ok = item.ComplementByName("Aguacate")
	assert.False(t, ok)
}
