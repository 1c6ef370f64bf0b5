package dtos

import "strings"

// CountryInput is the payload accepted by the country create and update forms.
type CountryInput struct {
	Name string `json:"name" form:"name" binding:"required,max=255"`
}

// RegionCreateInput is the payload of the region create form. The country
// comes from the route, so a posted country_id is not bound.
type RegionCreateInput struct {
	Name string `json:"name" form:"name" binding:"required,max=255"`
}

// RegionInput is the payload of the region update form. A zero CountryID
// keeps the current country.
type RegionInput struct {
	Name      string `json:"name" form:"name" binding:"required,max=255"`
	CountryID int    `json:"countryId" form:"country_id" binding:"omitempty,min=1"`
}

// CityCreateInput is the payload of the city create form; the region comes
// from the route.
type CityCreateInput struct {
	Name string `json:"name" form:"name" binding:"required,max=255"`
}

// CityInput is the payload of the city update form.
type CityInput struct {
	Name     string `json:"name" form:"name" binding:"required,max=255"`
	RegionID int    `json:"regionId" form:"region_id" binding:"omitempty,min=1"`
}

// SearchParams is the filter and paging state of an index listing.
type SearchParams struct {
	ID        int    `form:"id"`
	Name      string `form:"name"`
	CreatedBy int    `form:"created_by"`
	UpdatedBy int    `form:"updated_by"`
	Sort      string `form:"sort"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per-page"`
}

// Page is one page of a sorted, filtered listing.
type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PerPage    int   `json:"perPage"`
	PageCount  int   `json:"pageCount"`
}

// DepDropOption is one entry of a dependent dropdown.
type DepDropOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DepDropResponse is the body returned to dependent dropdown widgets.
type DepDropResponse struct {
	Output []DepDropOption `json:"output"`
}

// ImportResult summarises a spreadsheet import.
type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

// Validate reports the checks binding tags cannot express.
func (in CountryInput) Validate() FieldErrors {
	return validateName(in.Name)
}

func (in RegionCreateInput) Validate() FieldErrors {
	return validateName(in.Name)
}

func (in RegionInput) Validate() FieldErrors {
	return validateName(in.Name)
}

func (in CityCreateInput) Validate() FieldErrors {
	return validateName(in.Name)
}

func (in CityInput) Validate() FieldErrors {
	return validateName(in.Name)
}

func validateName(name string) FieldErrors {
	if strings.TrimSpace(name) == "" {
		return FieldErrors{"name": "Name cannot be blank."}
	}
	return nil
}
