package controller

import (
	"errors"
	"log"
	"net/http"

	menuentity "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"
	"github.com/angelsaidmejia/paneldecontrol/src/order/application/request"
	"github.com/angelsaidmejia/paneldecontrol/src/order/application/usecase"
	"github.com/angelsaidmejia/paneldecontrol/src/order/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrderController maneja las peticiones HTTP para los pedidos
type OrderController struct {
	createUC        *usecase.CreateOrderUseCase
	completeUC      *usecase.CompleteOrderUseCase
	cancelUC        *usecase.CancelOrderUseCase
	listPendingUC   *usecase.ListPendingOrdersUseCase
	listCompletedUC *usecase.ListCompletedOrdersUseCase
	listUrgentUC    *usecase.ListUrgentOrdersUseCase
}

// NewOrderController crea una nueva instancia del controlador
func NewOrderController(
	createUC *usecase.CreateOrderUseCase,
	completeUC *usecase.CompleteOrderUseCase,
	cancelUC *usecase.CancelOrderUseCase,
	listPendingUC *usecase.ListPendingOrdersUseCase,
	listCompletedUC *usecase.ListCompletedOrdersUseCase,
	listUrgentUC *usecase.ListUrgentOrdersUseCase,
) *OrderController {
	return &OrderController{
		createUC:        createUC,
		completeUC:      completeUC,
		cancelUC:        cancelUC,
		listPendingUC:   listPendingUC,
		listCompletedUC: listCompletedUC,
		listUrgentUC:    listUrgentUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *OrderController) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.POST("", c.CreateOrder)
		orders.GET("/pending", c.ListPendingOrders)
		orders.GET("/completed", c.ListCompletedOrders)
		orders.GET("/urgent", c.ListUrgentOrders)
		orders.POST("/:order_id/complete", c.CompleteOrder)
		orders.DELETE("/:order_id", c.CancelOrder)
	}

	log.Println("Rutas Orders disponibles:")
	log.Println("  POST   /api/v1/orders")
	log.Println("  GET    /api/v1/orders/pending")
	log.Println("  GET    /api/v1/orders/completed")
	log.Println("  GET    /api/v1/orders/urgent")
	log.Println("  POST   /api/v1/orders/:order_id/complete")
	log.Println("  DELETE /api/v1/orders/:order_id")
}

// CreateOrder levanta un nuevo pedido
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	order, err := c.createUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, menuentity.ErrMenuItemNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrCustomerNameRequired),
			errors.Is(err, entity.ErrInvalidPaymentMethod),
			errors.Is(err, entity.ErrDeliveryTimeRequired),
			errors.Is(err, entity.ErrInvalidDeliveryTime):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error creating order: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, order)
}

// ListPendingOrders lista el tablero de pendientes con marca de urgencia
func (c *OrderController) ListPendingOrders(ctx *gin.Context) {
	list, err := c.listPendingUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing pending orders: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// ListCompletedOrders lista los pedidos entregados en el día en curso
func (c *OrderController) ListCompletedOrders(ctx *gin.Context) {
	list, err := c.listCompletedUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing completed orders: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// ListUrgentOrders lista los pendientes dentro de la ventana de urgencia
func (c *OrderController) ListUrgentOrders(ctx *gin.Context) {
	urgent, err := c.listUrgentUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing urgent orders: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       urgent,
		"total_count": len(urgent),
	})
}

// CompleteOrder marca el pedido como entregado
func (c *OrderController) CompleteOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("order_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_id format"})
		return
	}

	order, err := c.completeUC.Execute(ctx.Request.Context(), orderID)
	if err != nil {
		c.respondTransitionError(ctx, err, "Error completing order")
		return
	}

	ctx.JSON(http.StatusOK, order)
}

// CancelOrder elimina un pedido que sigue pendiente
func (c *OrderController) CancelOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("order_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order_id format"})
		return
	}

	if err := c.cancelUC.Execute(ctx.Request.Context(), orderID); err != nil {
		c.respondTransitionError(ctx, err, "Error cancelling order")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"cancelled": orderID})
}

func (c *OrderController) respondTransitionError(ctx *gin.Context, err error, logPrefix string) {
	switch {
	case errors.Is(err, entity.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrOrderNotPending):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", logPrefix, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
