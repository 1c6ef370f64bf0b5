package routes

import (
	"github.com/geodata/location-admin/src/controllers"
	"github.com/geodata/location-admin/src/middleware"
	"github.com/geodata/location-admin/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCityRoutes(router *gin.Engine, service *services.CityService, regions *services.RegionService) {
	cityController := controllers.NewCityController(service, regions)

	// Protected routes
	city := router.Group("/city")
	city.Use(middleware.AuthMiddleware())
	{
		city.GET("/index", cityController.Index)
		city.GET("/view", cityController.View)
		city.GET("/create", cityController.Create)
		city.POST("/create", cityController.Create)
		city.GET("/update", cityController.Update)
		city.POST("/update", cityController.Update)
		city.POST("/delete", cityController.Delete)
		city.POST("/list", cityController.List)
	}
}
