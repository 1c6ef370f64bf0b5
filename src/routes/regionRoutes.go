package routes

import (
	"github.com/geodata/location-admin/src/controllers"
	"github.com/geodata/location-admin/src/middleware"
	"github.com/geodata/location-admin/src/services"
	"github.com/gin-gonic/gin"
)

func SetupRegionRoutes(router *gin.Engine, service *services.RegionService, countries *services.CountryService) {
	regionController := controllers.NewRegionController(service, countries)

	// Protected routes
	region := router.Group("/region")
	region.Use(middleware.AuthMiddleware())
	{
		region.GET("/index", regionController.Index)
		region.GET("/view", regionController.View)
		region.GET("/create", regionController.Create)
		region.POST("/create", regionController.Create)
		region.GET("/update", regionController.Update)
		region.POST("/update", regionController.Update)
		region.POST("/delete", regionController.Delete)
		region.POST("/list", regionController.List)
	}
}
