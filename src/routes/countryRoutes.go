package routes

import (
	"github.com/geodata/location-admin/src/controllers"
	"github.com/geodata/location-admin/src/middleware"
	"github.com/geodata/location-admin/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCountryRoutes(router *gin.Engine, service *services.CountryService) {
	countryController := controllers.NewCountryController(service)

	// Protected routes
	country := router.Group("/country")
	country.Use(middleware.AuthMiddleware())
	{
		country.GET("/index", countryController.Index)
		country.GET("/view", countryController.View)
		country.GET("/create", countryController.Create)
		country.POST("/create", countryController.Create)
		country.GET("/update", countryController.Update)
		country.POST("/update", countryController.Update)
		country.POST("/delete", countryController.Delete)
	}
}
