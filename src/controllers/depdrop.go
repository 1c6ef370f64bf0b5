package controllers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const depDropParents = "depdrop_parents"

// depDropParent returns the first value of the depdrop_parents list posted by
// a dependent dropdown. Form posts may encode the list as
// depdrop_parents[]=v, depdrop_parents[0]=v or depdrop_parents=v; JSON posts
// as {"depdrop_parents": [v]}. Empty, zero and non-numeric values report false.
func depDropParent(ctx *gin.Context) (int, bool) {
	var first string
	if ctx.ContentType() == binding.MIMEJSON {
		var body struct {
			Parents []any `json:"depdrop_parents"`
		}
		if err := ctx.ShouldBindJSON(&body); err != nil || len(body.Parents) == 0 {
			return 0, false
		}
		switch v := body.Parents[0].(type) {
		case nil:
			return 0, false
		case float64:
			first = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			first = fmt.Sprint(v)
		}
	} else {
		if values := ctx.PostFormArray(depDropParents + "[]"); len(values) > 0 {
			first = values[0]
		} else if indexed := ctx.PostFormMap(depDropParents); indexed["0"] != "" {
			first = indexed["0"]
		} else if values := ctx.PostFormArray(depDropParents); len(values) > 0 {
			first = values[0]
		}
	}

	id, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
