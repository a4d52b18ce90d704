package v1

import (
	"github.com/buildledger/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Project endpoints - protected by AuthMiddleware, mutations require a
	// managing role
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", middleware.ManageMiddleware(), CreateProject)
		projectGroup.GET("/:id", GetProject)
		projectGroup.PUT("/:id", middleware.ManageMiddleware(), UpdateProject)
		projectGroup.DELETE("/:id", middleware.ManageMiddleware(), DeleteProject)
		projectGroup.GET("/:id/stats", GetProjectStats)
	}

	// Everything below requires an authenticated user
	authRouter := router.Group("")
	authRouter.Use(middleware.AuthMiddleware())

	NewPhaseController().RegisterRoutes(authRouter)
	NewCategoryController().RegisterRoutes(authRouter)
	NewItemController().RegisterRoutes(authRouter)
	NewVendorController().RegisterRoutes(authRouter)
	NewPurchaseController().RegisterRoutes(authRouter)

	NewChatController().RegisterRoutes(authRouter)
	NewDashboardController().RegisterRoutes(authRouter)
	NewReportController().RegisterRoutes(authRouter)
}
