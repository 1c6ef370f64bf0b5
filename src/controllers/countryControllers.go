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

type CountryController struct {
	service *services.CountryService
}

func NewCountryController(service *services.CountryService) *CountryController {
	return &CountryController{service: service}
}

var countriesCrumb = views.Crumb{Label: "Countries", URL: "/country/index"}

// Index lists the countries matching the query string filters
func (c *CountryController) Index(ctx *gin.Context) {
	params, ok := bindSearch(ctx)
	if !ok {
		return
	}
	page, err := c.service.SearchCountries(ctx.Request.Context(), params)
	if err != nil {
		handleError(ctx, err)
		return
	}

	grid := views.Grid{
		Layout:        views.Layout{Title: "Countries"},
		Entity:        "country",
		CreateURL:     entityURL("country", "create"),
		CreateLabel:   "Create Country",
		ChildrenLabel: "Regions",
		FilterAction:  "/country/index",
		FilterName:    params.Name,
		Rows: lo.Map(page.Items, func(m models.CountryModel, _ int) views.Row {
			row := auditRow(m.ID, m.Name, m.AuditFields)
			row.ViewURL = entityURL("country", "view", "id", m.ID)
			row.UpdateURL = entityURL("country", "update", "id", m.ID)
			row.DeleteURL = entityURL("country", "delete", "id", m.ID)
			row.ChildrenURL = entityURL("region", "index", "countryId", m.ID)
			return row
		}),
	}
	gridPager(ctx, &grid, page)
	respond(ctx, http.StatusOK, views.GridTemplate, grid, page)
}

// View shows a single country
func (c *CountryController) View(ctx *gin.Context) {
	country, ok := c.findModel(ctx)
	if !ok {
		return
	}
	detail := views.Detail{
		Layout: views.Layout{Title: country.Name, Crumbs: []views.Crumb{countriesCrumb}},
		Fields: append([]views.Field{
			{Label: "ID", Value: strconv.Itoa(country.ID)},
			{Label: "Name", Value: country.Name},
		}, auditFields(country.AuditFields)...),
		UpdateURL:     entityURL("country", "update", "id", country.ID),
		DeleteURL:     entityURL("country", "delete", "id", country.ID),
		ChildrenURL:   entityURL("region", "index", "countryId", country.ID),
		ChildrenLabel: "Regions",
	}
	respond(ctx, http.StatusOK, views.DetailTemplate, detail, country)
}

// Create shows the country form and, on a valid POST, creates the country and
// redirects to its view page
func (c *CountryController) Create(ctx *gin.Context) {
	form := views.Form{
		Layout:    views.Layout{Title: "Create Country", Crumbs: []views.Crumb{countriesCrumb}},
		Action:    entityURL("country", "create"),
		CancelURL: "/country/index",
	}
	if ctx.Request.Method != http.MethodPost {
		respond(ctx, http.StatusOK, views.FormTemplate, form, gin.H{})
		return
	}

	var input dtos.CountryInput
	if errs := bindForm(ctx, &input); errs != nil {
		form.Name, form.Errors = input.Name, errs
		respond(ctx, http.StatusUnprocessableEntity, views.FormTemplate, form, gin.H{"errors": errs})
		return
	}
	country, err := c.service.CreateCountry(ctx.Request.Context(), input, middleware.CurrentUserID(ctx))
	if err != nil {
		handleError(ctx, err)
		return
	}
	redirect(ctx, entityURL("country", "view", "id", country.ID))
}

// Update shows the form for an existing country and, on a valid POST, saves it
// and redirects to its view page
func (c *CountryController) Update(ctx *gin.Context) {
	country, ok := c.findModel(ctx)
	if !ok {
		return
	}
	form := views.Form{
		Layout: views.Layout{
			Title: "Update Country: " + country.Name,
			Crumbs: []views.Crumb{
				countriesCrumb,
				{Label: country.Name, URL: entityURL("country", "view", "id", country.ID)},
			},
		},
		Action:    entityURL("country", "update", "id", country.ID),
		Name:      country.Name,
		CancelURL: entityURL("country", "view", "id", country.ID),
	}
	if ctx.Request.Method != http.MethodPost {
		respond(ctx, http.StatusOK, views.FormTemplate, form, country)
		return
	}

	var input dtos.CountryInput
	if errs := bindForm(ctx, &input); errs != nil {
		form.Name, form.Errors = input.Name, errs
		respond(ctx, http.StatusUnprocessableEntity, views.FormTemplate, form, gin.H{"errors": errs})
		return
	}
	if _, err := c.service.UpdateCountry(ctx.Request.Context(), country.ID, input, middleware.CurrentUserID(ctx)); err != nil {
		handleError(ctx, err)
		return
	}
	redirect(ctx, entityURL("country", "view", "id", country.ID))
}

// Delete removes a country and redirects to the country index
func (c *CountryController) Delete(ctx *gin.Context) {
	id, ok := queryID(ctx, "id")
	if !ok {
		return
	}
	if err := c.service.DeleteCountry(ctx.Request.Context(), id); err != nil {
		handleError(ctx, err)
		return
	}
	redirect(ctx, "/country/index")
}

// findModel loads the country named by the id query parameter, answering 404
// when there is none
func (c *CountryController) findModel(ctx *gin.Context) (*models.CountryModel, bool) {
	id, ok := queryID(ctx, "id")
	if !ok {
		return nil, false
	}
	country, err := c.service.GetCountryByID(ctx.Request.Context(), id)
	if err != nil {
		handleError(ctx, err)
		return nil, false
	}
	return country, true
}
