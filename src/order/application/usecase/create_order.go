package usecase

import (
	"context"
	"fmt"
	"strings"

	debtentity "github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"
	debtport "github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"
	menuentity "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	menuport "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/port"
	"github.com/angelsaidmejia/paneldecontrol/src/order/application/request"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"
)

// CreateOrderUseCase caso de uso para levantar un pedido.
// El precio se arma desde el producto del menú más los complementos
// elegidos; si el pago queda como deuda, se registra también la deuda
// del cliente.
type CreateOrderUseCase struct {
	orderRepo port.OrderRepository
	menuRepo  menuport.MenuItemRepository
	debtRepo  debtport.DebtRepository
}

// NewCreateOrderUseCase crea una nueva instancia del caso de uso
func NewCreateOrderUseCase(orderRepo port.OrderRepository, menuRepo menuport.MenuItemRepository, debtRepo debtport.DebtRepository) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
		debtRepo:  debtRepo,
	}
}

// Execute crea el pedido a partir del producto y las selecciones del cliente
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req *request.CreateOrderRequest) (*entity.Order, error) {
	product, err := uc.menuRepo.FindByID(ctx, req.MenuItemID)
	if err != nil {
		return nil, err
	}

	// Precio: base del producto más complementos elegidos
	totalPrice := product.BasePrice
	var selectedComplements []string
	for _, name := range req.Complements {
		complement, ok := product.ComplementByName(name)
		if !ok {
			return nil, fmt.Errorf("product %q has no complement %q", product.Name, name)
		}
		totalPrice = totalPrice.Add(complement.Price)
		selectedComplements = append(selectedComplements, complement.Name)
	}

	customizations := buildCustomizations(product, selectedComplements, req.Options)

	order, err := entity.NewOrder(
		strings.TrimSpace(req.CustomerName),
		product.Name,
		product.Category,
		totalPrice,
		req.DeliveryTime,
		req.ForNow,
		entity.PaymentMethod(req.PaymentMethod),
		strings.TrimSpace(req.Notes),
		customizations,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.orderRepo.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("error saving order: %w", err)
	}

	// Pago como deuda: se registra la deuda con una copia del nombre y el
	// monto. No queda referencia viva al pedido.
	if order.PaymentMethod == entity.PaymentDeuda {
		debt, err := debtentity.NewDebt(order.CustomerName, order.TotalPrice, "Pedido: "+product.Name, "")
		if err != nil {
			return nil, fmt.Errorf("error building debt for order: %w", err)
		}
		if err := uc.debtRepo.Save(ctx, debt); err != nil {
			return nil, fmt.Errorf("error saving debt for order: %w", err)
		}
	}

	return order, nil
}

// buildCustomizations arma el texto de personalizaciones:
// "Con: a, b | Opción: valor, Opción2: valor2"
func buildCustomizations(product *menuentity.MenuItem, complements []string, chosenOptions map[string]string) string {
	var parts []string

	if len(complements) > 0 {
		parts = append(parts, "Con: "+strings.Join(complements, ", "))
	}

	// Se recorren las opciones en el orden del producto para que el texto
	// sea estable
	var optionParts []string
	for _, option := range product.Options {
		value, ok := chosenOptions[option.Name]
		if !ok || value == "" {
			continue
		}
		optionParts = append(optionParts, option.Name+": "+value)
	}
	if len(optionParts) > 0 {
		parts = append(parts, strings.Join(optionParts, ", "))
	}

	return strings.Join(parts, " | ")
}
