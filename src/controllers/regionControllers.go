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

type RegionController struct {
	service   *services.RegionService
	countries *services.CountryService
}

func NewRegionController(service *services.RegionService, countries *services.CountryService) *RegionController {
	return &RegionController{service: service, countries: countries}
}

func countryCrumbs(country *models.CountryModel) []views.Crumb {
	return []views.Crumb{
		countriesCrumb,
		{Label: country.Name, URL: entityURL("country", "view", "id", country.ID)},
		{Label: "Regions", URL: entityURL("region", "index", "countryId", country.ID)},
	}
}

// Index lists the regions of the country given by countryId
func (c *RegionController) Index(ctx *gin.Context) {
	country, ok := c.findCountry(ctx)
	if !ok {
		return
	}
	params, ok := bindSearch(ctx)
	if !ok {
		return
	}
	page, err := c.service.SearchRegions(ctx.Request.Context(), country.ID, params)
	if err != nil {
		handleError(ctx, err)
		return
	}

	crumbs := countryCrumbs(country)
	grid := views.Grid{
		Layout:        views.Layout{Title: "Regions", Crumbs: crumbs[:2]},
		Entity:        "region",
		CreateURL:     entityURL("region", "create", "countryId", country.ID),
		CreateLabel:   "Create Region",
		ChildrenLabel: "Cities",
		FilterAction:  "/region/index",
		FilterName:    params.Name,
		ParentParam:   "countryId",
		ParentID:      country.ID,
		Rows: lo.Map(page.Items, func(m models.RegionModel, _ int) views.Row {
			row := auditRow(m.ID, m.Name, m.AuditFields)
			row.ViewURL = entityURL("region", "view", "id", m.ID)
			row.UpdateURL = entityURL("region", "update", "id", m.ID)
			row.DeleteURL = entityURL("region", "delete", "id", m.ID)
			row.ChildrenURL = entityURL("city", "index", "regionId", m.ID)
			return row
		}),
	}
	gridPager(ctx, &grid, page)
	respond(ctx, http.StatusOK, views.GridTemplate, grid, page)
}

// View shows a single region
func (c *RegionController) View(ctx *gin.Context) {
	region, ok := c.findModel(ctx)
	if !ok {
		return
	}
	detail := views.Detail{
		Layout: views.Layout{Title: region.Name, Crumbs: regionParentCrumbs(region)},
		Fields: append([]views.Field{
			{Label: "ID", Value: strconv.Itoa(region.ID)},
			{Label: "Name", Value: region.Name},
			{Label: "Country", Value: countryName(region)},
		}, auditFields(region.AuditFields)...),
		UpdateURL:     entityURL("region", "update", "id", region.ID),
		DeleteURL:     entityURL("region", "delete", "id", region.ID),
		ChildrenURL:   entityURL("city", "index", "regionId", region.ID),
		ChildrenLabel: "Cities",
	}
	respond(ctx, http.StatusOK, views.DetailTemplate, detail, region)
}

// Create shows the region form for the country given by countryId and, on a
// valid POST, creates the region and redirects to its view page
func (c *RegionController) Create(ctx *gin.Context) {
	country, ok := c.findCountry(ctx)
	if !ok {
		return
	}
	form := views.Form{
		Layout:    views.Layout{Title: "Create Region", Crumbs: countryCrumbs(country)},
		Action:    entityURL("region", "create", "countryId", country.ID),
		CancelURL: entityURL("region", "index", "countryId", country.ID),
	}
	if ctx.Request.Method != http.MethodPost {
		respond(ctx, http.StatusOK, views.FormTemplate, form, gin.H{"countryId": country.ID})
		return
	}

	var input dtos.RegionCreateInput
	if errs := bindForm(ctx, &input); errs != nil {
		form.Name, form.Errors = input.Name, errs
		respond(ctx, http.StatusUnprocessableEntity, views.FormTemplate, form, gin.H{"errors": errs})
		return
	}
	region, err := c.service.CreateRegion(ctx.Request.Context(), country.ID, input, middleware.CurrentUserID(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	redirect(ctx, entityURL("region", "view", "id", region.ID))
}

// Update shows the form for an existing region and, on a valid POST, saves it
// and redirects to its view page
func (c *RegionController) Update(ctx *gin.Context) {
	region, ok := c.findModel(ctx)
	if !ok {
		return
	}
	form := views.Form{
		Layout: views.Layout{
			Title:  "Update Region: " + region.Name,
			Crumbs: append(regionParentCrumbs(region), views.Crumb{Label: region.Name, URL: entityURL("region", "view", "id", region.ID)}),
		},
		Action:      entityURL("region", "update", "id", region.ID),
		Name:        region.Name,
		ParentName:  "country_id",
		ParentLabel: "Country",
		ParentValue: region.CountryID,
		CancelURL:   entityURL("region", "view", "id", region.ID),
	}
	if ctx.Request.Method != http.MethodPost {
		respond(ctx, http.StatusOK, views.FormTemplate, form, region)
		return
	}

	var input dtos.RegionInput
	errs := bindForm(ctx, &input)
	if errs == nil {
		_, err := c.service.UpdateRegion(ctx.Request.Context(), region.ID, input, middleware.CurrentUserID(ctx))
		switch {
		case err == nil:
			redirect(ctx, entityURL("region", "view", "id", region.ID))
			return
		case isParentNotFound(err):
			errs = dtos.FieldErrors{"country_id": "Country is invalid."}
		default:
			handleError(ctx, err)
			return
		}
	}
	form.Name, form.Errors = input.Name, errs
	if input.CountryID > 0 {
		form.ParentValue = input.CountryID
	}
	respond(ctx, http.StatusUnprocessableEntity, views.FormTemplate, form, gin.H{"errors": errs})
}

// Delete removes a region and redirects to the region index of its country
func (c *RegionController) Delete(ctx *gin.Context) {
	region, ok := c.findModel(ctx)
	if !ok {
		return
	}
	if err := c.service.DeleteRegion(ctx.Request.Context(), region.ID); err != nil {
		handleError(ctx, err)
		return
	}
	redirect(ctx, entityURL("region", "index", "countryId", region.CountryID))
}

// List answers a dependent dropdown with the regions of the selected country
func (c *RegionController) List(ctx *gin.Context) {
	output := []dtos.DepDropOption{}
	if countryID, ok := depDropParent(ctx); ok {
		options, err := c.service.ListOptions(ctx.Request.Context(), countryID)
		if err != nil {
			handleError(ctx, err)
			return
		}
		output = options
	}
	ctx.JSON(http.StatusOK, dtos.DepDropResponse{Output: output})
}

// findModel loads the region named by the id query parameter, answering 404
// when there is none
func (c *RegionController) findModel(ctx *gin.Context) (*models.RegionModel, bool) {
	id, ok := queryID(ctx, "id")
	if !ok {
		return nil, false
	}
	region, err := c.service.GetRegionByID(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return nil, false
	}
	return region, true
}

func (c *RegionController) findCountry(ctx *gin.Context) (*models.CountryModel, bool) {
	countryID, ok := queryID(ctx, "countryId")
	if !ok {
		return nil, false
	}
	country, err := c.countries.GetCountryByID(ctx.Request.Context(), countryID)
	if err != nil {
		handleError(ctx, err)
		return nil, false
	}
	return country, true
}

func regionParentCrumbs(region *models.RegionModel) []views.Crumb {
	if region.Country == nil {
		return []views.Crumb{countriesCrumb}
	}
	return countryCrumbs(region.Country)
}

func countryName(region *models.RegionModel) string {
	if region.Country == nil {
		return ""
	}
	return region.Country.Name
}
