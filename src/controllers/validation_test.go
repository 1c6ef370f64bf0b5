package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/geodata/location-admin/src/dtos"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func formContext(values url.Values) *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodPost, "/city/update?id=1", strings.NewReader(values.Encode()))
	ctx.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return ctx
}

func TestBindForm(t *testing.T) {
	var input dtos.CityInput
	errs := bindForm(formContext(url.Values{"name": {"Porto"}, "region_id": {"3"}}), &input)
	assert.Nil(t, errs)
	assert.Equal(t, dtos.CityInput{Name: "Porto", RegionID: 3}, input)

	input = dtos.CityInput{}
	errs = bindForm(formContext(url.Values{}), &input)
	assert.Equal(t, dtos.FieldErrors{"name": "Name cannot be blank."}, errs)

	input = dtos.CityInput{}
	errs = bindForm(formContext(url.Values{"name": {"ok"}, "region_id": {"-2"}}), &input)
	assert.Equal(t, dtos.FieldErrors{"region_id": "Region is invalid."}, errs)

	input = dtos.CityInput{}
	errs = bindForm(formContext(url.Values{"name": {"ok"}, "region_id": {"abc"}}), &input)
	assert.Contains(t, errs, "form")
}
