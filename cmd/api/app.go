package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/DiegoUniline/salon-sync-sub000/docs"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/controller"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/api/route"
	"github.com/DiegoUniline/salon-sync-sub000/internal/adapter/repository"
	"github.com/DiegoUniline/salon-sync-sub000/internal/infrastructure/database"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/auth"
	"github.com/DiegoUniline/salon-sync-sub000/pkg/logger"
	tenantpkg "github.com/DiegoUniline/salon-sync-sub000/pkg/tenant"
)

// App representa la aplicación y sus dependencias
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	logger logger.Logger

	tenantMiddleware gin.HandlerFunc

	authController        *controller.AuthController
	tenantController      *controller.TenantController
	branchController      *controller.BranchController
	userController        *controller.UserController
	customerController    *controller.CustomerController
	serviceController     *controller.ServiceController
	productController     *controller.ProductController
	appointmentController *controller.AppointmentController
	saleController        *controller.SaleController
	expenseController     *controller.ExpenseController
	purchaseController    *controller.PurchaseController
	shiftController       *controller.ShiftController
	reportController      *controller.ReportController
}

// NewApp crea una nueva instancia de la aplicación con todas sus
// dependencias conectadas
func NewApp() (*App, error) {
	appLogger := logger.NewLogger()

	// Base de datos
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	// Repositorios del schema público
	tenantRepo := repository.NewPostgresTenantRepository(db)
	branchRepo := repository.NewPostgresBranchRepository(db)
	userRepo := repository.NewPostgresUserRepository(db)

	// Repositorios del schema del tenant
	customerRepo := repository.NewPostgresCustomerRepository(db)
	serviceRepo := repository.NewPostgresServiceRepository(db)
	productRepo := repository.NewPostgresProductRepository(db)
	appointmentRepo := repository.NewPostgresAppointmentRepository(db)
	saleRepo := repository.NewPostgresSaleRepository(db)
	expenseRepo := repository.NewPostgresExpenseRepository(db)
	purchaseRepo := repository.NewPostgresPurchaseRepository(db)
	shiftRepo := repository.NewPostgresShiftRepository(db)
	cashCutRepo := repository.NewPostgresCashCutRepository(db)

	// Middleware de tenant
	tenantValidator := repository.NewDatabaseTenantValidator(db)
	tenantMiddleware := tenantpkg.TenantMiddleware(tenantValidator)

	// Autenticación
	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Controllers
	authController := controller.NewAuthController(userRepo, jwtService, appLogger)
	tenantController := controller.NewTenantController(tenantRepo, appLogger)
	branchController := controller.NewBranchController(branchRepo, tenantRepo)
	userController := controller.NewUserController(userRepo)
	customerController := controller.NewCustomerController(customerRepo)
	serviceController := controller.NewServiceController(serviceRepo)
	productController := controller.NewProductController(productRepo)
	appointmentController := controller.NewAppointmentController(appointmentRepo, serviceRepo)
	saleController := controller.NewSaleController(saleRepo, serviceRepo, productRepo, customerRepo, appLogger)
	expenseController := controller.NewExpenseController(expenseRepo)
	purchaseController := controller.NewPurchaseController(purchaseRepo, productRepo, appLogger)
	shiftController := controller.NewShiftController(shiftRepo, cashCutRepo, saleRepo, expenseRepo, purchaseRepo, appointmentRepo, appLogger)
	reportController := controller.NewReportController(saleRepo, expenseRepo, purchaseRepo, appointmentRepo)

	// Router
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "tenant-id", "branch-id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	return &App{
		router:                router,
		db:                    db,
		logger:                appLogger,
		tenantMiddleware:      tenantMiddleware,
		authController:        authController,
		tenantController:      tenantController,
		branchController:      branchController,
		userController:        userController,
		customerController:    customerController,
		serviceController:     serviceController,
		productController:     productController,
		appointmentController: appointmentController,
		saleController:        saleController,
		expenseController:     expenseController,
		purchaseController:    purchaseController,
		shiftController:       shiftController,
		reportController:      reportController,
	}, nil
}

// SetupRoutes configura las rutas de la aplicación
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Documentación
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rutas administrativas, sin middleware de tenant
	route.SetupTenantRoutes(api, a.tenantController)

	// Rutas del tenant
	tenantRoutes := api.Group("")
	tenantRoutes.Use(a.tenantMiddleware)

	route.SetupAuthRoutes(tenantRoutes, a.authController)
	route.SetupBranchRoutes(tenantRoutes, a.branchController)
	route.SetupUserRoutes(tenantRoutes, a.userController)
	route.SetupCustomerRoutes(tenantRoutes, a.customerController)
	route.SetupCatalogRoutes(tenantRoutes, a.serviceController, a.productController)
	route.SetupAppointmentRoutes(tenantRoutes, a.appointmentController)
	route.SetupSaleRoutes(tenantRoutes, a.saleController)
	route.SetupExpenseRoutes(tenantRoutes, a.expenseController)
	route.SetupPurchaseRoutes(tenantRoutes, a.purchaseController)
	route.SetupShiftRoutes(tenantRoutes, a.shiftController)
	route.SetupReportRoutes(tenantRoutes, a.reportController)
}

// Start inicia el servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera los recursos de la aplicación
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// corsOrigins retorna los orígenes permitidos para CORS
func corsOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return []string{origins}
	}
	return []string{"http://localhost:3000"}
}
