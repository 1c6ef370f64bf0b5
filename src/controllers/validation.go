package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/geodata/location-admin/src/dtos"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report validation errors under the form field names.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	}
}

type validatable interface {
	Validate() dtos.FieldErrors
}

// bindForm binds the request payload into input and returns the field errors,
// if any. A nil result means input is valid.
func bindForm(ctx *gin.Context, input validatable) dtos.FieldErrors {
	errs := dtos.FieldErrors{}
	if err := ctx.ShouldBind(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs["form"] = err.Error()
			return errs
		}
		for _, fe := range verrs {
			errs[fe.Field()] = fieldMessage(fe)
		}
	}
	for field, msg := range input.Validate() {
		if _, seen := errs[field]; !seen {
			errs[field] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func fieldMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s cannot be blank.", label)
	case "max":
		return fmt.Sprintf("%s should contain at most %s characters.", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}

func fieldLabel(field string) string {
	switch field {
	case "name":
		return "Name"
	case "country_id":
		return "Country"
	case "region_id":
		return "Region"
	}
	return field
}
