package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/geodata/location-admin/src/dtos"
	"github.com/geodata/location-admin/src/models"
	"github.com/geodata/location-admin/src/services"
	"github.com/geodata/location-admin/src/views"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const notFoundMessage = "The requested page does not exist."

var offered = []string{binding.MIMEHTML, binding.MIMEJSON}

// respond renders the HTML page for browsers and the plain data for clients
// that prefer JSON.
func respond(ctx *gin.Context, code int, template string, page any, data any) {
	ctx.Negotiate(code, gin.Negotiate{
		Offered:  offered,
		HTMLName: template,
		HTMLData: page,
		JSONData: data,
	})
}

func abortWithMessage(ctx *gin.Context, code int, message string) {
	if ctx.NegotiateFormat(offered...) == binding.MIMEJSON {
		ctx.AbortWithStatusJSON(code, gin.H{"error": message})
		return
	}
	ctx.Abort()
	ctx.String(code, message)
}

// handleError maps service errors onto HTTP statuses.
func handleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrParentNotFound):
		abortWithMessage(ctx, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, services.ErrHasDependents):
		abortWithMessage(ctx, http.StatusConflict, err.Error())
	default:
		_ = ctx.Error(err)
		abortWithMessage(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

// queryID parses a required positive integer query parameter, answering 400
// when it is missing or malformed.
func queryID(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Query(name))
	if err != nil || id <= 0 {
		abortWithMessage(ctx, http.StatusBadRequest, fmt.Sprintf("Invalid %s parameter", name))
		return 0, false
	}
	return id, true
}

func redirect(ctx *gin.Context, location string) {
	ctx.Redirect(http.StatusSeeOther, location)
}

func bindSearch(ctx *gin.Context) (dtos.SearchParams, bool) {
	var params dtos.SearchParams
	if err := ctx.ShouldBindQuery(&params); err != nil {
		abortWithMessage(ctx, http.StatusBadRequest, err.Error())
		return params, false
	}
	return params, true
}

// pagerURL returns the current request URL pointing at another page.
func pagerURL(ctx *gin.Context, page int) string {
	u := *ctx.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.RequestURI()
}

func gridPager[T any](ctx *gin.Context, grid *views.Grid, page *dtos.Page[T]) {
	grid.TotalCount = page.TotalCount
	grid.Page = page.Page
	grid.PageCount = page.PageCount
	if page.Page > 1 {
		grid.PrevURL = pagerURL(ctx, page.Page-1)
	}
	if page.Page < page.PageCount {
		grid.NextURL = pagerURL(ctx, page.Page+1)
	}
}

func auditRow(id int, name string, audit models.AuditFields) views.Row {
	return views.Row{
		ID:        id,
		Name:      name,
		CreatedAt: audit.CreatedAt,
		CreatedBy: audit.CreatedBy,
		UpdatedAt: audit.UpdatedAt,
		UpdatedBy: audit.UpdatedBy,
	}
}

func auditFields(audit models.AuditFields) []views.Field {
	actor := func(id *int) string {
		if id == nil {
			return ""
		}
		return strconv.Itoa(*id)
	}
	return []views.Field{
		{Label: "Created At", Value: audit.CreatedAt.Format("2006-01-02 15:04:05")},
		{Label: "Created By", Value: actor(audit.CreatedBy)},
		{Label: "Updated At", Value: audit.UpdatedAt.Format("2006-01-02 15:04:05")},
		{Label: "Updated By", Value: actor(audit.UpdatedBy)},
	}
}

func entityURL(entity, action string, params ...any) string {
	q := url.Values{}
	for i := 0; i+1 < len(params); i += 2 {
		q.Set(fmt.Sprint(params[i]), fmt.Sprint(params[i+1]))
	}
	if len(q) == 0 {
		return "/" + entity + "/" + action
	}
	return "/" + entity + "/" + action + "?" + q.Encode()
}

func isParentNotFound(err error) bool {
	return errors.Is(err, services.ErrParentNotFound)
}
