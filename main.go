package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	apiConfig "github.com/angelsaidmejia/paneldecontrol/src/api/config"
	customerUseCase "github.com/angelsaidmejia/paneldecontrol/src/customer/application/usecase"
	customerPort "github.com/angelsaidmejia/paneldecontrol/src/customer/domain/port"
	customerCache "github.com/angelsaidmejia/paneldecontrol/src/customer/infrastructure/cache"
	customerController "github.com/angelsaidmejia/paneldecontrol/src/customer/infrastructure/controller"
	customerPersistence "github.com/angelsaidmejia/paneldecontrol/src/customer/infrastructure/persistence"
	debtUseCase "github.com/angelsaidmejia/paneldecontrol/src/debt/application/usecase"
	debtPort "github.com/angelsaidmejia/paneldecontrol/src/debt/domain/port"
	debtController "github.com/angelsaidmejia/paneldecontrol/src/debt/infrastructure/controller"
	debtPersistence "github.com/angelsaidmejia/paneldecontrol/src/debt/infrastructure/persistence"
	menuUseCase "github.com/angelsaidmejia/paneldecontrol/src/menu/application/usecase"
	menuPort "github.com/angelsaidmejia/paneldecontrol/src/menu/domain/port"
	menuController "github.com/angelsaidmejia/paneldecontrol/src/menu/infrastructure/controller"
	menuPersistence "github.com/angelsaidmejia/paneldecontrol/src/menu/infrastructure/persistence"
	orderUseCase "github.com/angelsaidmejia/paneldecontrol/src/order/application/usecase"
	orderPort "github.com/angelsaidmejia/paneldecontrol/src/order/domain/port"
	orderController "github.com/angelsaidmejia/paneldecontrol/src/order/infrastructure/controller"
	orderPersistence "github.com/angelsaidmejia/paneldecontrol/src/order/infrastructure/persistence"
	sharedConfig "github.com/angelsaidmejia/paneldecontrol/src/shared/infrastructure/config"
	statsUseCase "github.com/angelsaidmejia/paneldecontrol/src/stats/application/usecase"
	statsPort "github.com/angelsaidmejia/paneldecontrol/src/stats/domain/port"
	statsController "github.com/angelsaidmejia/paneldecontrol/src/stats/infrastructure/controller"
	statsPersistence "github.com/angelsaidmejia/paneldecontrol/src/stats/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	log.Println("🚀 Panel de Control - Iniciando...")

	sharedConfig.LoadEnv()
	cfg := sharedConfig.LoadAppConfig()

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := os.Getenv("PROMETHEUS_ENABLED")
	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Conectar a la base de datos (opcional: sin DB se usan repositorios
	// en memoria y el estado se pierde al reiniciar)
	db := connectDatabase(cfg.DatabaseURL)
	if db != nil {
		defer db.Close()
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Crear repositorios, con respaldo en memoria si no hay DB
	menuRepo := buildMenuRepository(db)
	orderRepo := buildOrderRepository(db)
	debtRepo := buildDebtRepository(db)
	statsRepo := buildStatsRepository(db)
	settingRepo := buildSettingRepository(db)

	// Configurar módulos de dominio
	setupMenuModule(v1, menuRepo, cfg.RestaurantName)
	setupOrderModule(v1, orderRepo, menuRepo, debtRepo, cfg.StatsLocation)
	setupDebtModule(v1, debtRepo)
	setupStatsModule(v1, orderRepo, statsRepo, cfg.StatsLocation)
	setupCustomerModule(v1, settingRepo)

	// Iniciar el servidor
	log.Printf("✅ Servidor Panel de Control iniciado en http://localhost:%s", cfg.Port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", cfg.Port)
	router.Run(":" + cfg.Port)
}

// connectDatabase abre y verifica la conexión; nil significa seguir sin DB
func connectDatabase(databaseURL string) *sql.DB {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (repositorios en memoria)")
		return nil
	}
	if err := db.Ping(); err != nil {
		log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (repositorios en memoria)")
		db.Close()
		return nil
	}
	log.Println("✅ Conexión a la base de datos establecida con éxito")
	return db
}

func buildMenuRepository(db *sql.DB) menuPort.MenuItemRepository {
	if db != nil {
		repo, err := menuPersistence.NewMenuItemPostgresRepository(db)
		if err == nil {
			return repo
		}
		log.Printf("⚠️  Error preparando esquema de menú, usando memoria: %v", err)
	}
	return menuPersistence.NewMenuItemMemoryRepository()
}

func buildOrderRepository(db *sql.DB) orderPort.OrderRepository {
	if db != nil {
		repo, err := orderPersistence.NewOrderPostgresRepository(db)
		if err == nil {
			return repo
		}
		log.Printf("⚠️  Error preparando esquema de pedidos, usando memoria: %v", err)
	}
	return orderPersistence.NewOrderMemoryRepository()
}

func buildDebtRepository(db *sql.DB) debtPort.DebtRepository {
	if db != nil {
		repo, err := debtPersistence.NewDebtPostgresRepository(db)
		if err == nil {
			return repo
		}
		log.Printf("⚠️  Error preparando esquema de deudas, usando memoria: %v", err)
	}
	return debtPersistence.NewDebtMemoryRepository()
}

func buildStatsRepository(db *sql.DB) statsPort.DailyStatsRepository {
	if db != nil {
		repo, err := statsPersistence.NewDailyStatsPostgresRepository(db)
		if err == nil {
			return repo
		}
		log.Printf("⚠️  Error preparando esquema de cierres, usando memoria: %v", err)
	}
	return statsPersistence.NewDailyStatsMemoryRepository()
}

func buildSettingRepository(db *sql.DB) customerPort.SettingRepository {
	if db != nil {
		repo, err := customerPersistence.NewSettingPostgresRepository(db)
		if err == nil {
			return repo
		}
		log.Printf("⚠️  Error preparando esquema de settings, usando memoria: %v", err)
	}
	return customerPersistence.NewSettingMemoryRepository()
}

// setupMenuModule configura el módulo Menu
func setupMenuModule(router *gin.RouterGroup, menuRepo menuPort.MenuItemRepository, restaurant string) {
	log.Println("Configurando módulo Menu...")

	createUC := menuUseCase.NewCreateMenuItemUseCase(menuRepo)
	updateUC := menuUseCase.NewUpdateMenuItemUseCase(menuRepo)
	listUC := menuUseCase.NewListMenuItemsUseCase(menuRepo)
	deleteUC := menuUseCase.NewDeleteMenuItemUseCase(menuRepo)
	exportUC := menuUseCase.NewExportMenuUseCase(menuRepo, restaurant)
	importUC := menuUseCase.NewImportMenuUseCase(menuRepo)

	ctrl := menuController.NewMenuController(createUC, updateUC, listUC, deleteUC, exportUC, importUC)
	ctrl.RegisterRoutes(router)

	log.Println("Módulo Menu configurado exitosamente")
}

// setupOrderModule configura el módulo Order
func setupOrderModule(
	router *gin.RouterGroup,
	orderRepo orderPort.OrderRepository,
	menuRepo menuPort.MenuItemRepository,
	debtRepo debtPort.DebtRepository,
	location *time.Location,
) {
	log.Println("Configurando módulo Order...")

	createUC := orderUseCase.NewCreateOrderUseCase(orderRepo, menuRepo, debtRepo)
	completeUC := orderUseCase.NewCompleteOrderUseCase(orderRepo)
	cancelUC := orderUseCase.NewCancelOrderUseCase(orderRepo)
	listPendingUC := orderUseCase.NewListPendingOrdersUseCase(orderRepo, location)
	listCompletedUC := orderUseCase.NewListCompletedOrdersUseCase(orderRepo, location)
	listUrgentUC := orderUseCase.NewListUrgentOrdersUseCase(orderRepo, location)

	ctrl := orderController.NewOrderController(createUC, completeUC, cancelUC, listPendingUC, listCompletedUC, listUrgentUC)
	ctrl.RegisterRoutes(router)

	log.Println("Módulo Order configurado exitosamente")
}

// setupDebtModule configura el módulo Debt
func setupDebtModule(router *gin.RouterGroup, debtRepo debtPort.DebtRepository) {
	log.Println("Configurando módulo Debt...")

	createUC := debtUseCase.NewCreateDebtUseCase(debtRepo)
	paymentUC := debtUseCase.NewRegisterPaymentUseCase(debtRepo)
	listUC := debtUseCase.NewListActiveDebtsUseCase(debtRepo)
	getUC := debtUseCase.NewGetDebtUseCase(debtRepo)
	deleteUC := debtUseCase.NewDeleteDebtUseCase(debtRepo)
	summaryUC := debtUseCase.NewDebtSummaryUseCase(debtRepo)
	recentUC := debtUseCase.NewRecentPaymentsUseCase(debtRepo)
	suggestionsUC := debtUseCase.NewPaymentSuggestionsUseCase(debtRepo)

	ctrl := debtController.NewDebtController(createUC, paymentUC, listUC, getUC, deleteUC, summaryUC, recentUC, suggestionsUC)
	ctrl.RegisterRoutes(router)

	log.Println("Módulo Debt configurado exitosamente")
}

// setupStatsModule configura el módulo Stats
func setupStatsModule(
	router *gin.RouterGroup,
	orderRepo orderPort.OrderRepository,
	statsRepo statsPort.DailyStatsRepository,
	location *time.Location,
) {
	log.Println("Configurando módulo Stats...")

	dailyUC := statsUseCase.NewDailyStatsUseCase(orderRepo, location)
	monthlyUC := statsUseCase.NewMonthlyStatsUseCase(orderRepo, location)
	yearlyUC := statsUseCase.NewYearlyStatsUseCase(orderRepo, location)
	endDayUC := statsUseCase.NewEndDayUseCase(orderRepo, statsRepo, location)
	clearUC := statsUseCase.NewClearStatsUseCase(orderRepo, statsRepo)
	exportUC := statsUseCase.NewExportDailyCSVUseCase(orderRepo, location)

	ctrl := statsController.NewStatsController(dailyUC, monthlyUC, yearlyUC, endDayUC, clearUC, exportUC)
	ctrl.RegisterRoutes(router)

	log.Println("Módulo Stats configurado exitosamente")
}

// setupCustomerModule configura el módulo Customer
func setupCustomerModule(router *gin.RouterGroup, settingRepo customerPort.SettingRepository) {
	log.Println("Configurando módulo Customer...")

	directory := customerCache.NewCustomerCache()
	if err := directory.Warm(context.Background(), settingRepo); err != nil {
		log.Printf("⚠️  Warning: Could not warm customer cache: %v", err)
	}

	listUC := customerUseCase.NewListCustomersUseCase(settingRepo, directory)
	addUC := customerUseCase.NewAddCustomerUseCase(settingRepo, directory)
	removeUC := customerUseCase.NewRemoveCustomerUseCase(settingRepo, directory)

	ctrl := customerController.NewCustomerController(listUC, addUC, removeUC)
	ctrl.RegisterRoutes(router)

	log.Println("Módulo Customer configurado exitosamente")
}
