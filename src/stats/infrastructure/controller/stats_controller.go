package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/angelsaidmejia/paneldecontrol/src/stats/application/usecase"
	"github.com/angelsaidmejia/paneldecontrol/src/stats/domain/entity"

	"github.com/gin-gonic/gin"
)

// StatsController maneja las peticiones HTTP para las estadísticas
type StatsController struct {
	dailyUC   *usecase.DailyStatsUseCase
	monthlyUC *usecase.MonthlyStatsUseCase
	yearlyUC  *usecase.YearlyStatsUseCase
	endDayUC  *usecase.EndDayUseCase
	clearUC   *usecase.ClearStatsUseCase
	exportUC  *usecase.ExportDailyCSVUseCase
}

// NewStatsController crea una nueva instancia del controlador
func NewStatsController(
	dailyUC *usecase.DailyStatsUseCase,
	monthlyUC *usecase.MonthlyStatsUseCase,
	yearlyUC *usecase.YearlyStatsUseCase,
	endDayUC *usecase.EndDayUseCase,
	clearUC *usecase.ClearStatsUseCase,
	exportUC *usecase.ExportDailyCSVUseCase,
) *StatsController {
	return &StatsController{
		dailyUC:   dailyUC,
		monthlyUC: monthlyUC,
		yearlyUC:  yearlyUC,
		endDayUC:  endDayUC,
		clearUC:   clearUC,
		exportUC:  exportUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *StatsController) RegisterRoutes(router *gin.RouterGroup) {
	stats := router.Group("/stats")
	{
		stats.GET("/daily", c.DailyStats)
		stats.GET("/daily/export", c.ExportDailyCSV)
		stats.GET("/monthly", c.MonthlyStats)
		stats.GET("/yearly", c.YearlyStats)
		stats.POST("/end-day", c.EndDay)
		stats.DELETE("", c.ClearStats)
	}

	log.Println("Rutas Stats disponibles:")
	log.Println("  GET    /api/v1/stats/daily?date=YYYY-MM-DD")
	log.Println("  GET    /api/v1/stats/daily/export?date=YYYY-MM-DD")
	log.Println("  GET    /api/v1/stats/monthly?year=&month=")
	log.Println("  GET    /api/v1/stats/yearly?year=")
	log.Println("  POST   /api/v1/stats/end-day")
	log.Println("  DELETE /api/v1/stats")
}

// DailyStats devuelve el resumen de un día; sin fecha es el día de hoy
func (c *StatsController) DailyStats(ctx *gin.Context) {
	stats, err := c.dailyUC.Execute(ctx.Request.Context(), ctx.Query("date"))
	if err != nil {
		c.respondStatsError(ctx, err, "Error computing daily stats")
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// MonthlyStats devuelve el consolidado de un mes calendario
func (c *StatsController) MonthlyStats(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "year query parameter is required"})
		return
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "month query parameter is required"})
		return
	}

	stats, err := c.monthlyUC.Execute(ctx.Request.Context(), year, month)
	if err != nil {
		c.respondStatsError(ctx, err, "Error computing monthly stats")
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// YearlyStats devuelve el consolidado de un año completo
func (c *StatsController) YearlyStats(ctx *gin.Context) {
	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "year query parameter is required"})
		return
	}

	stats, err := c.yearlyUC.Execute(ctx.Request.Context(), year)
	if err != nil {
		c.respondStatsError(ctx, err, "Error computing yearly stats")
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// ExportDailyCSV descarga el resumen del día como archivo CSV
func (c *StatsController) ExportDailyCSV(ctx *gin.Context) {
	data, date, err := c.exportUC.Execute(ctx.Request.Context(), ctx.Query("date"))
	if err != nil {
		c.respondStatsError(ctx, err, "Error exporting daily stats")
		return
	}

	filename := fmt.Sprintf("ventas-%s.csv", date)
	ctx.Header("Content-Disposition", "attachment; filename="+filename)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// EndDay guarda el cierre de la jornada en curso
func (c *StatsController) EndDay(ctx *gin.Context) {
	snapshot, err := c.endDayUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error ending day: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, snapshot)
}

// ClearStats borra el historial de ventas y los cierres guardados
func (c *StatsController) ClearStats(ctx *gin.Context) {
	result, err := c.clearUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error clearing stats: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func (c *StatsController) respondStatsError(ctx *gin.Context, err error, logPrefix string) {
	switch {
	case errors.Is(err, entity.ErrInvalidDate),
		errors.Is(err, entity.ErrInvalidMonth),
		errors.Is(err, entity.ErrInvalidYear):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", logPrefix, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
