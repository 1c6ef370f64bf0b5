package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func depDropContext(body, contentType string) *gin.Context {
	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest(http.MethodPost, "/region/list", strings.NewReader(body))
	ctx.Request.Header.Set("Content-Type", contentType)
	return ctx
}

func TestDepDropParent(t *testing.T) {
	const form = "application/x-www-form-urlencoded"
	tests := []struct {
		name        string
		body        string
		contentType string
		want        int
		ok          bool
	}{
		{"bracket list", "depdrop_parents%5B%5D=7&depdrop_parents%5B%5D=3", form, 7, true},
		{"indexed", "depdrop_parents%5B0%5D=4", form, 4, true},
		{"plain", "depdrop_parents=11", form, 11, true},
		{"json number", `{"depdrop_parents":[12,1]}`, "application/json", 12, true},
		{"json string", `{"depdrop_parents":["13"]}`, "application/json", 13, true},
		{"missing", "", form, 0, false},
		{"empty first", "depdrop_parents%5B%5D=&depdrop_parents%5B%5D=3", form, 0, false},
		{"zero", "depdrop_parents%5B%5D=0", form, 0, false},
		{"not a number", "depdrop_parents%5B%5D=x", form, 0, false},
		{"json null", `{"depdrop_parents":[null]}`, "application/json", 0, false},
		{"json empty list", `{"depdrop_parents":[]}`, "application/json", 0, false},
		{"bad json", `{`, "application/json", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := depDropParent(depDropContext(tt.body, tt.contentType))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
