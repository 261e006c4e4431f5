package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/angelsaidmejia/paneldecontrol/src/customer/application/usecase"
	"github.com/angelsaidmejia/paneldecontrol/src/customer/domain/entity"

	"github.com/gin-gonic/gin"
)

// CustomerController maneja las peticiones HTTP del directorio de clientes
type CustomerController struct {
	listUC   *usecase.ListCustomersUseCase
	addUC    *usecase.AddCustomerUseCase
	removeUC *usecase.RemoveCustomerUseCase
}

// NewCustomerController crea una nueva instancia del controlador
func NewCustomerController(
	listUC *usecase.ListCustomersUseCase,
	addUC *usecase.AddCustomerUseCase,
	removeUC *usecase.RemoveCustomerUseCase,
) *CustomerController {
	return &CustomerController{
		listUC:   listUC,
		addUC:    addUC,
		removeUC: removeUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CustomerController) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.GET("", c.ListCustomers)
		customers.POST("", c.AddCustomer)
		customers.DELETE("/:name", c.RemoveCustomer)
	}

	log.Println("Rutas Customers disponibles:")
	log.Println("  GET    /api/v1/customers")
	log.Println("  POST   /api/v1/customers")
	log.Println("  DELETE /api/v1/customers/:name")
}

// ListCustomers lista los clientes guardados
func (c *CustomerController) ListCustomers(ctx *gin.Context) {
	names, err := c.listUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing customers: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"customers":   names,
		"total_count": len(names),
	})
}

// AddCustomer guarda un cliente frecuente nuevo
func (c *CustomerController) AddCustomer(ctx *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	names, err := c.addUC.Execute(ctx.Request.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrCustomerNameEmpty):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrCustomerAlreadyExists):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("Error adding customer: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"customers": names})
}

// RemoveCustomer quita un cliente del directorio
func (c *CustomerController) RemoveCustomer(ctx *gin.Context) {
	names, err := c.removeUC.Execute(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrCustomerNameEmpty):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrCustomerNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			log.Printf("Error removing customer: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"customers": names})
}
