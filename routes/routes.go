// File: /routes/routes.go
package routes

import (
	"net/http"

	"fueltrack-api/config"
	"fueltrack-api/controllers"
	"fueltrack-api/middleware"
	"fueltrack-api/repositories"
	"fueltrack-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, emailService *services.EmailService) {
	statsService := services.NewStatsService(
		repositories.NewVehicleRepository(db),
		repositories.NewEnergyEntryRepository(db),
	)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, cfg.JWTExpiry, emailService)
	userController := controllers.NewUserController(db)
	vehicleController := controllers.NewVehicleController(db)
	entryController := controllers.NewEnergyEntryController(db)
	serviceController := controllers.NewServiceRecordController(db)
	statsController := controllers.NewStatsController(statsService)
	calculatorController := controllers.NewCalculatorController(statsService)

	// API version 1
	v1 := r.Group("/api/v1")
	v1.Use(middleware.ErrorHandler())

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		users := protected.Group("/users/me")
		{
			users.GET("", userController.GetProfile)
			users.PUT("", userController.UpdateProfile)
			users.DELETE("", userController.DeleteAccount)
			users.PUT("/password", userController.ChangePassword)
		}

		vehicles := protected.Group("/vehicles")
		{
			vehicles.GET("", vehicleController.GetVehicles)
			vehicles.POST("", vehicleController.CreateVehicle)
			vehicles.GET("/:id", vehicleController.GetVehicle)
			vehicles.PUT("/:id", vehicleController.UpdateVehicle)
			vehicles.DELETE("/:id", vehicleController.DeleteVehicle)

			vehicles.POST("/:id/energy-types", vehicleController.AddEnergyType)
			vehicles.DELETE("/:id/energy-types/:type", vehicleController.RemoveEnergyType)

			vehicles.GET("/:id/entries", middleware.Pagination(defaultPageSize, maxPageSize), entryController.GetEntries)
			vehicles.POST("/:id/entries", entryController.CreateEntry)
			vehicles.GET("/:id/entries/:entryId", entryController.GetEntry)
			vehicles.PUT("/:id/entries/:entryId", entryController.UpdateEntry)
			vehicles.DELETE("/:id/entries/:entryId", entryController.DeleteEntry)

			vehicles.GET("/:id/services", serviceController.GetServiceRecords)
			vehicles.POST("/:id/services", serviceController.CreateServiceRecord)
			vehicles.GET("/:id/services/:serviceId", serviceController.GetServiceRecord)
			vehicles.PUT("/:id/services/:serviceId", serviceController.UpdateServiceRecord)
			vehicles.DELETE("/:id/services/:serviceId", serviceController.DeleteServiceRecord)

			vehicles.GET("/:id/stats", statsController.GetVehicleStats)
			vehicles.POST("/:id/trip-estimate", calculatorController.EstimateTrip)
		}

		protected.GET("/stats", statsController.GetDashboard)
	}
}
