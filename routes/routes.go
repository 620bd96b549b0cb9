package routes

import (
	"net/http"

	"VidaClinic/cache"
	"VidaClinic/config"
	"VidaClinic/controllers"
	"VidaClinic/database"
	"VidaClinic/events"
	"VidaClinic/handlers"
	"VidaClinic/middlewares"
	"VidaClinic/repositories"
	"VidaClinic/services"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires repositories, services and handlers by hand and
// returns the configured HTTP handler.
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, publisher *events.Publisher) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://app.vidaclinic.health"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	router.Use(middlewares.LoggingMiddleware())

	// Repositories
	patientRepo := repositories.NewPatientRepository(cache)
	userRepo := repositories.NewUserRepository(cache)
	orderRepo := repositories.NewOrderRepository(cache)
	invoiceRepo := repositories.NewInvoiceRepository(cache)
	appointmentRepo := repositories.NewAppointmentRepository(cache)
	inventoryRepo := repositories.NewInventoryRepository()
	recordRepo := repositories.NewMedicalRecordRepository(database.ClinicalHistoryCollection())

	// Services
	patientService := services.NewPatientService(patientRepo, publisher)
	userService := services.NewUserService(userRepo)
	orderService := services.NewOrderService(orderRepo, patientRepo, userRepo, publisher)
	billingService := services.NewBillingService(invoiceRepo, orderRepo, patientRepo, userRepo, publisher)
	recordService := services.NewMedicalRecordService(recordRepo, patientRepo)
	appointmentService := services.NewAppointmentService(appointmentRepo, patientRepo)
	inventoryService := services.NewInventoryService(inventoryRepo)

	// Handlers
	patientHandler := handlers.NewPatientHandler(patientService)
	userHandler := handlers.NewUserHandler(userService)
	authHandler := handlers.NewAuthHandler(userService)
	orderHandler := handlers.NewOrderHandler(orderService)
	billingHandler := handlers.NewBillingHandler(billingService)
	recordHandler := handlers.NewMedicalRecordHandler(recordService)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	// Staff endpoints require a valid session token on top of the shared
	// bearer token; login itself stays outside the group.
	protected := router.Group("", middlewares.TokenAuthMiddleware())
	controllers.SetupClinicRoutes(
		protected,
		patientHandler,
		userHandler,
		orderHandler,
		billingHandler,
		recordHandler,
		appointmentHandler,
		inventoryHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
