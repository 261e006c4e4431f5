package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/angelsaidmejia/paneldecontrol/src/debt/application/request"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/application/usecase"
	"github.com/angelsaidmejia/paneldecontrol/src/debt/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DebtController maneja las peticiones HTTP para las deudas
type DebtController struct {
	createUC      *usecase.CreateDebtUseCase
	paymentUC     *usecase.RegisterPaymentUseCase
	listUC        *usecase.ListActiveDebtsUseCase
	getUC         *usecase.GetDebtUseCase
	deleteUC      *usecase.DeleteDebtUseCase
	summaryUC     *usecase.DebtSummaryUseCase
	recentUC      *usecase.RecentPaymentsUseCase
	suggestionsUC *usecase.PaymentSuggestionsUseCase
}

// NewDebtController crea una nueva instancia del controlador
func NewDebtController(
	createUC *usecase.CreateDebtUseCase,
	paymentUC *usecase.RegisterPaymentUseCase,
	listUC *usecase.ListActiveDebtsUseCase,
	getUC *usecase.GetDebtUseCase,
	deleteUC *usecase.DeleteDebtUseCase,
	summaryUC *usecase.DebtSummaryUseCase,
	recentUC *usecase.RecentPaymentsUseCase,
	suggestionsUC *usecase.PaymentSuggestionsUseCase,
) *DebtController {
	return &DebtController{
		createUC:      createUC,
		paymentUC:     paymentUC,
		listUC:        listUC,
		getUC:         getUC,
		deleteUC:      deleteUC,
		summaryUC:     summaryUC,
		recentUC:      recentUC,
		suggestionsUC: suggestionsUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *DebtController) RegisterRoutes(router *gin.RouterGroup) {
	debts := router.Group("/debts")
	{
		debts.GET("", c.ListActiveDebts)
		debts.POST("", c.CreateDebt)
		debts.GET("/summary", c.DebtSummary)
		debts.GET("/payments/recent", c.RecentPayments)
		debts.GET("/:debt_id", c.GetDebt)
		debts.DELETE("/:debt_id", c.DeleteDebt)
		debts.POST("/:debt_id/payments", c.RegisterPayment)
		debts.GET("/:debt_id/suggestions", c.PaymentSuggestions)
	}

	log.Println("Rutas Debts disponibles:")
	log.Println("  GET    /api/v1/debts?search=")
	log.Println("  POST   /api/v1/debts")
	log.Println("  GET    /api/v1/debts/summary")
	log.Println("  GET    /api/v1/debts/payments/recent")
	log.Println("  GET    /api/v1/debts/:debt_id")
	log.Println("  DELETE /api/v1/debts/:debt_id")
	log.Println("  POST   /api/v1/debts/:debt_id/payments")
	log.Println("  GET    /api/v1/debts/:debt_id/suggestions")
}

// CreateDebt registra una deuda nueva
func (c *DebtController) CreateDebt(ctx *gin.Context) {
	var req request.CreateDebtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	debt, err := c.createUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrCustomerNameRequired),
			errors.Is(err, entity.ErrConceptRequired),
			errors.Is(err, entity.ErrInvalidDebtAmount):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error creating debt: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, debt)
}

// ListActiveDebts lista la cartera activa, con búsqueda opcional
func (c *DebtController) ListActiveDebts(ctx *gin.Context) {
	list, err := c.listUC.Execute(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		log.Printf("Error listing debts: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// GetDebt consulta una deuda con su historial de abonos
func (c *DebtController) GetDebt(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("debt_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid debt_id format"})
		return
	}

	debt, err := c.getUC.Execute(ctx.Request.Context(), debtID)
	if err != nil {
		c.respondLookupError(ctx, err, "Error getting debt")
		return
	}

	ctx.JSON(http.StatusOK, debt)
}

// DeleteDebt elimina una deuda del registro
func (c *DebtController) DeleteDebt(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("debt_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid debt_id format"})
		return
	}

	if err := c.deleteUC.Execute(ctx.Request.Context(), debtID); err != nil {
		c.respondLookupError(ctx, err, "Error deleting debt")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": debtID})
}

// RegisterPayment abona contra una deuda
func (c *DebtController) RegisterPayment(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("debt_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid debt_id format"})
		return
	}

	var req request.RegisterPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	debt, err := c.paymentUC.Execute(ctx.Request.Context(), debtID, &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrDebtNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrInvalidPaymentAmount),
			errors.Is(err, entity.ErrPaymentExceedsRemaining):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("Error registering payment: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, debt)
}

// PaymentSuggestions propone montos rápidos de abono
func (c *DebtController) PaymentSuggestions(ctx *gin.Context) {
	debtID, err := uuid.Parse(ctx.Param("debt_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid debt_id format"})
		return
	}

	suggestions, err := c.suggestionsUC.Execute(ctx.Request.Context(), debtID)
	if err != nil {
		c.respondLookupError(ctx, err, "Error getting payment suggestions")
		return
	}

	ctx.JSON(http.StatusOK, suggestions)
}

// DebtSummary resume la cartera activa
func (c *DebtController) DebtSummary(ctx *gin.Context) {
	summary, err := c.summaryUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error getting debt summary: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// RecentPayments lista los últimos abonos recibidos
func (c *DebtController) RecentPayments(ctx *gin.Context) {
	payments, err := c.recentUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing recent payments: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       payments,
		"total_count": len(payments),
	})
}

func (c *DebtController) respondLookupError(ctx *gin.Context, err error, logPrefix string) {
	if errors.Is(err, entity.ErrDebtNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	log.Printf("%s: %v", logPrefix, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
