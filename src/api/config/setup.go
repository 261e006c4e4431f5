package config

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API (health y metadatos)
type APIConfig struct {
	DB          *sql.DB
	Version     string
	ServiceName string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		Version:     "dev",
		ServiceName: "paneldecontrol",
	}
}

// SetupAPIModule registra /health en la raíz y bajo el grupo versionado.
// El health check reporta el estado de la base de datos sin fallar el
// servicio cuando opera en modo memoria.
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := func(ctx *gin.Context) {
		dbStatus := "disabled"
		if cfg.DB != nil {
			if err := cfg.DB.Ping(); err != nil {
				dbStatus = "unreachable"
			} else {
				dbStatus = "ok"
			}
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"service":  cfg.ServiceName,
			"version":  cfg.Version,
			"database": dbStatus,
		})
	}

	router.GET("/health", handler)
	v1.GET("/health", handler)
}
