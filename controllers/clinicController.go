package controllers

import (
	"VidaClinic/handlers"
	"VidaClinic/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes registers the administrative endpoints. The caller
// passes a group already behind session-token authentication.
func SetupClinicRoutes(
	router gin.IRouter,
	patientHandler *handlers.PatientHandler,
	userHandler *handlers.UserHandler,
	orderHandler *handlers.OrderHandler,
	billingHandler *handlers.BillingHandler,
	recordHandler *handlers.MedicalRecordHandler,
	appointmentHandler *handlers.AppointmentHandler,
	inventoryHandler *handlers.InventoryHandler,
) {
	router.POST("/patients", patientHandler.RegisterPatient)
	router.GET("/patients", patientHandler.GetAllPatients)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	router.DELETE("/patients/:patient_id", patientHandler.DeletePatient)

	router.POST("/users", userHandler.CreateUser)
	router.GET("/users", userHandler.GetAllUsers)
	router.GET("/users/:user_id", userHandler.GetUserByID)
	router.GET("/users/:user_id/capabilities", userHandler.GetCapabilities)
	router.PUT("/users/:user_id/password", userHandler.ChangePassword)
	router.DELETE("/users/:user_id", userHandler.DeleteUser)

	router.POST("/orders", orderHandler.CreateOrder)
	router.GET("/orders/:order_number", orderHandler.GetOrderByNumber)
	router.POST("/orders/:order_number/items", orderHandler.AddItems)
	router.POST("/orders/:order_number/invoice", billingHandler.InvoiceOrder)
	router.GET("/patients/:patient_id/orders", orderHandler.GetOrdersByPatient)

	router.GET("/invoices/:invoice_id", billingHandler.GetInvoiceByID)
	router.GET("/patients/:patient_id/invoices", billingHandler.GetInvoicesByPatient)

	router.POST("/patients/:patient_id/records", recordHandler.AddEntry)
	router.GET("/patients/:patient_id/records", recordHandler.GetHistory)

	router.POST("/patients/:patient_id/appointments", appointmentHandler.ScheduleAppointment)
	router.GET("/patients/:patient_id/appointments", appointmentHandler.GetAppointmentsByPatient)
	router.PUT("/appointments/:appointment_id/status", appointmentHandler.UpdateAppointmentStatus)

	// Stock management is the administrative desk's job.
	inventory := router.Group("/inventory", middlewares.RoleAuthMiddleware("ADMINISTRATIVE"))
	inventory.POST("", inventoryHandler.CreateItem)
	inventory.GET("", inventoryHandler.GetAllItems)
	inventory.GET("/:item_id", inventoryHandler.GetItemByID)
	inventory.PUT("/:item_id/quantity", inventoryHandler.AdjustQuantity)
	inventory.DELETE("/:item_id", inventoryHandler.DeleteItem)
}
