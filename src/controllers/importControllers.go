package controllers

import (
	"net/http"

	"github.com/geodata/location-admin/src/middleware"
	"github.com/geodata/location-admin/src/services"
	"github.com/gin-gonic/gin"
)

type ImportController struct {
	service *services.ImportService
}

func NewImportController(service *services.ImportService) *ImportController {
	return &ImportController{service: service}
}

// ImportLocations handles multipart uploads of a country/region/city spreadsheet
func (c *ImportController) ImportLocations(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	result, err := c.service.ImportXLSX(ctx.Request.Context(), file, middleware.CurrentUserID(ctx))
	if err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}
