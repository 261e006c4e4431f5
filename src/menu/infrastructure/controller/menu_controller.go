package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/angelsaidmejia/paneldecontrol/src/menu/application/request"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/application/response"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/application/usecase"
	"github.com/angelsaidmejia/paneldecontrol/src/menu/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MenuController maneja las peticiones HTTP para el menú
type MenuController struct {
	createUC *usecase.CreateMenuItemUseCase
	updateUC *usecase.UpdateMenuItemUseCase
	listUC   *usecase.ListMenuItemsUseCase
	deleteUC *usecase.DeleteMenuItemUseCase
	exportUC *usecase.ExportMenuUseCase
	importUC *usecase.ImportMenuUseCase
}

// NewMenuController crea una nueva instancia del controlador
func NewMenuController(
	createUC *usecase.CreateMenuItemUseCase,
	updateUC *usecase.UpdateMenuItemUseCase,
	listUC *usecase.ListMenuItemsUseCase,
	deleteUC *usecase.DeleteMenuItemUseCase,
	exportUC *usecase.ExportMenuUseCase,
	importUC *usecase.ImportMenuUseCase,
) *MenuController {
	return &MenuController{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		exportUC: exportUC,
		importUC: importUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *MenuController) RegisterRoutes(router *gin.RouterGroup) {
	menu := router.Group("/menu")
	{
		menu.GET("", c.ListMenuItems)
		menu.POST("", c.CreateMenuItem)
		menu.GET("/export", c.ExportMenu)
		menu.POST("/import", c.ImportMenu)
		menu.PUT("/:item_id", c.UpdateMenuItem)
		menu.DELETE("/:item_id", c.DeleteMenuItem)
	}

	log.Println("Rutas Menu disponibles:")
	log.Println("  GET    /api/v1/menu?category=")
	log.Println("  POST   /api/v1/menu")
	log.Println("  PUT    /api/v1/menu/:item_id")
	log.Println("  DELETE /api/v1/menu/:item_id")
	log.Println("  GET    /api/v1/menu/export")
	log.Println("  POST   /api/v1/menu/import")
}

// ListMenuItems lista los productos, con filtro opcional por categoría
func (c *MenuController) ListMenuItems(ctx *gin.Context) {
	items, err := c.listUC.Execute(ctx.Request.Context(), ctx.Query("category"))
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCategory) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error listing menu items: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// CreateMenuItem agrega un producto al menú
func (c *MenuController) CreateMenuItem(ctx *gin.Context) {
	var req request.SaveMenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := c.createUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		c.respondSaveError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// UpdateMenuItem edita un producto existente
func (c *MenuController) UpdateMenuItem(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("item_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id format"})
		return
	}

	var req request.SaveMenuItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	item, err := c.updateUC.Execute(ctx.Request.Context(), itemID, &req)
	if err != nil {
		if errors.Is(err, entity.ErrMenuItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.respondSaveError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// DeleteMenuItem elimina un producto del menú
func (c *MenuController) DeleteMenuItem(ctx *gin.Context) {
	itemID, err := uuid.Parse(ctx.Param("item_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id format"})
		return
	}

	if err := c.deleteUC.Execute(ctx.Request.Context(), itemID); err != nil {
		if errors.Is(err, entity.ErrMenuItemNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("Error deleting menu item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"deleted": itemID})
}

// ExportMenu devuelve el menú completo en el formato de intercambio
func (c *MenuController) ExportMenu(ctx *gin.Context) {
	export, err := c.exportUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error exporting menu: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, export)
}

// ImportMenu importa productos desde un export previo.
// Los items inválidos se reportan pero no cortan el import de los válidos.
func (c *MenuController) ImportMenu(ctx *gin.Context) {
	var payload response.MenuExportResponse
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid import file", "details": err.Error()})
		return
	}

	result, err := c.importUC.Execute(ctx.Request.Context(), payload.Items)
	if err != nil {
		if errors.Is(err, usecase.ErrImportWithoutItems) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if result != nil {
			// Import parcial: hubo items inválidos
			ctx.JSON(http.StatusOK, gin.H{
				"imported_count": result.ImportedCount,
				"warnings":       err.Error(),
			})
			return
		}
		log.Printf("Error importing menu: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *MenuController) respondSaveError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNameRequired),
		errors.Is(err, entity.ErrInvalidCategory),
		errors.Is(err, entity.ErrInvalidPrice):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Error saving menu item: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
