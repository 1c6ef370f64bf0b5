package routes

import (
	"github.com/geodata/location-admin/src/controllers"
	"github.com/geodata/location-admin/src/middleware"
	"github.com/geodata/location-admin/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	userController := controllers.NewUserController(service)

	// Public routes
	router.POST("/login", userController.AuthenticateUser)

	// Protected routes
	user := router.Group("/users")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("", userController.GetAllUsers)
		user.POST("", userController.CreateUser)
		user.DELETE("/:id", userController.DeleteUser)
	}
}
