package routes

import (
	"github.com/geodata/location-admin/src/controllers"
	"github.com/geodata/location-admin/src/middleware"
	"github.com/geodata/location-admin/src/services"
	"github.com/gin-gonic/gin"
)

func SetupImportRoutes(router *gin.Engine, service *services.ImportService) {
	importController := controllers.NewImportController(service)

	router.POST("/import", middleware.AuthMiddleware(), importController.ImportLocations)
}
