package controllers

import (
	"net/http"
	"strconv"

	"github.com/geodata/location-admin/src/dtos"
	"github.com/geodata/location-admin/src/middleware"
	"github.com/geodata/location-admin/src/models"
	"github.com/geodata/location-admin/src/services"
	"github.com/geodata/location-admin/src/views"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type CityController struct {
	service *services.CityService
	regions *services.RegionService
}

func NewCityController(service *services.CityService, regions *services.RegionService) *CityController {
	return &CityController{service: service, regions: regions}
}

func regionCrumbs(region *models.RegionModel) []views.Crumb {
	return append(regionParentCrumbs(region),
		views.Crumb{Label: region.Name, URL: entityURL("region", "view", "id", region.ID)},
		views.Crumb{Label: "Cities", URL: entityURL("city", "index", "regionId", region.ID)},
	)
}

// Index lists the cities of the region given by regionId
func (c *CityController) Index(ctx *gin.Context) {
	region, ok := c.findRegion(ctx)
	if !ok {
		return
	}
	params, ok := bindSearch(ctx)
	if !ok {
		return
	}
	page, err := c.service.SearchCities(ctx.Request.Context(), region.ID, params)
	if err != nil {
		handleError(ctx, err)
		return
	}

	crumbs := regionCrumbs(region)
	grid := views.Grid{
		Layout:       views.Layout{Title: "Cities", Crumbs: crumbs[:len(crumbs)-1]},
		Entity:       "city",
		CreateURL:    entityURL("city", "create", "regionId", region.ID),
		CreateLabel:  "Create City",
		FilterAction: "/city/index",
		FilterName:   params.Name,
		ParentParam:  "regionId",
		ParentID:     region.ID,
		Rows: lo.Map(page.Items, func(m models.CityModel, _ int) views.Row {
			row := auditRow(m.ID, m.Name, m.AuditFields)
			row.ViewURL = entityURL("city", "view", "id", m.ID)
			row.UpdateURL = entityURL("city", "update", "id", m.ID)
			row.DeleteURL = entityURL("city", "delete", "id", m.ID)
			return row
		}),
	}
	gridPager(ctx, &grid, page)
	respond(ctx, http.StatusOK, views.GridTemplate, grid, page)
}

// View shows a single city
func (c *CityController) View(ctx *gin.Context) {
	city, ok := c.findModel(ctx)
	if !ok {
		return
	}
	detail := views.Detail{
		Layout: views.Layout{Title: city.Name, Crumbs: cityParentCrumbs(city)},
		Fields: append([]views.Field{
			{Label: "ID", Value: strconv.Itoa(city.ID)},
			{Label: "Name", Value: city.Name},
			{Label: "Region", Value: regionName(city)},
		}, auditFields(city.AuditFields)...),
		UpdateURL: entityURL("city", "update", "id", city.ID),
		DeleteURL: entityURL("city", "delete", "id", city.ID),
	}
	respond(ctx, http.StatusOK, views.DetailTemplate, detail, city)
}

// Create shows the city form for the region given by regionId and, on a valid
// POST, creates the city and redirects to its view page
func (c *CityController) Create(ctx *gin.Context) {
	region, ok := c.findRegion(ctx)
	if !ok {
		return
	}
	form := views.Form{
		Layout:    views.Layout{Title: "Create City", Crumbs: regionCrumbs(region)},
		Action:    entityURL("city", "create", "regionId", region.ID),
		CancelURL: entityURL("city", "index", "regionId", region.ID),
	}
	if ctx.Request.Method != http.MethodPost {
		respond(ctx, http.StatusOK, views.FormTemplate, form, gin.H{"regionId": region.ID})
		return
	}

	var input dtos.CityCreateInput
	if errs := bindForm(ctx, &input); errs != nil {
		form.Name, form.Errors = input.Name, errs
		respond(ctx, http.StatusUnprocessableEntity, views.FormTemplate, form, gin.H{"errors": errs})
		return
	}
	city, err := c.service.CreateCity(ctx.Request.Context(), region.ID, input, middleware.CurrentUserID(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	redirect(ctx, entityURL("city", "view", "id", city.ID))
}

// Update shows the form for an existing city and, on a valid POST, saves it
// and redirects to its view page
func (c *CityController) Update(ctx *gin.Context) {
	city, ok := c.findModel(ctx)
	if !ok {
		return
	}
	form := views.Form{
		Layout: views.Layout{
			Title:  "Update City: " + city.Name,
			Crumbs: append(cityParentCrumbs(city), views.Crumb{Label: city.Name, URL: entityURL("city", "view", "id", city.ID)}),
		},
		Action:      entityURL("city", "update", "id", city.ID),
		Name:        city.Name,
		ParentName:  "region_id",
		ParentLabel: "Region",
		ParentValue: city.RegionID,
		CancelURL:   entityURL("city", "view", "id", city.ID),
	}
	if ctx.Request.Method != http.MethodPost {
		respond(ctx, http.StatusOK, views.FormTemplate, form, city)
		return
	}

	var input dtos.CityInput
	errs := bindForm(ctx, &input)
	if errs == nil {
		_, err := c.service.UpdateCity(ctx.Request.Context(), city.ID, input, middleware.CurrentUserID(ctx))
		switch {
		case err == nil:
			redirect(ctx, entityURL("city", "view", "id", city.ID))
			return
		case isParentNotFound(err):
			errs = dtos.FieldErrors{"region_id": "Region is invalid."}
		default:
			handleError(ctx, err)
			return
		}
	}
	form.Name, form.Errors = input.Name, errs
	if input.RegionID > 0 {
		form.ParentValue = input.RegionID
	}
	respond(ctx, http.StatusUnprocessableEntity, views.FormTemplate, form, gin.H{"errors": errs})
}

// Delete removes a city and redirects to the city index of its region
func (c *CityController) Delete(ctx *gin.Context) {
	city, ok := c.findModel(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteCity(ctx.Request.Context(), city.ID); err != nil {
		handleError(ctx, err)
		return
	}
	redirect(ctx, entityURL("city", "index", "regionId", city.RegionID))
}

// List answers a dependent dropdown with the cities of the selected region
func (c *CityController) List(ctx *gin.Context) {
	output := []dtos.DepDropOption{}
	if regionID, ok := depDropParent(ctx); ok {
		options, err := c.service.ListOptions(ctx.Request.Context(), regionID)
		if err != nil {
			handleError(ctx, err)
			return
		}
		output = options
	}
	ctx.JSON(http.StatusOK, dtos.DepDropResponse{Output: output})
}

// findModel loads the city named by the id query parameter, answering 404
// when there is none
func (c *CityController) findModel(ctx *gin.Context) (*models.CityModel, bool) {
	id, ok := queryID(ctx, "id")
	if !ok {
		return nil, false
	}
	city, err := c.service.GetCityByID(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return nil, false
	}
	return city, true
}

func (c *CityController) findRegion(ctx *gin.Context) (*models.RegionModel, bool) {
	regionID, ok := queryID(ctx, "regionId")
	if !ok {
		return nil, false
	}
	region, err := c.regions.GetRegionByID(ctx.Request.Context(), regionID)
	if err != nil {
		handleError(ctx, err)
		return nil, false
	}
	return region, true
}

func cityParentCrumbs(city *models.CityModel) []views.Crumb {
	if city.Region == nil {
		return []views.Crumb{countriesCrumb}
	}
	return regionCrumbs(city.Region)
}

func regionName(city *models.CityModel) string {
	if city.Region == nil {
		return ""
	}
	return city.Region.Name
}
