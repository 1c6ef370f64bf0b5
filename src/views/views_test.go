package views

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridRendersRowsAndCrumbs(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	actor := 3
	grid := Grid{
		Layout:      Layout{Title: "Cities", Crumbs: []Crumb{{Label: "Countries", URL: "/country/index"}}},
		Entity:      "city",
		CreateURL:   "/city/create?regionId=1",
		CreateLabel: "Create City",
		Rows: []Row{{
			ID:        8,
			Name:      "Tromsø <north>",
			CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			CreatedBy: &actor,
			ViewURL:   "/city/view?id=8",
		}},
		Page:      1,
		PageCount: 1,
	}

	var out bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&out, GridTemplate, grid))
	html := out.String()
	assert.Contains(t, html, "Tromsø &lt;north&gt;")
	assert.Contains(t, html, "2024-03-01 10:00:00")
	assert.Contains(t, html, `href="/country/index"`)
	assert.Contains(t, html, "Create City")
}

func TestFormShowsFieldErrors(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	form := Form{
		Layout:      Layout{Title: "Update Region: X"},
		Action:      "/region/update?id=1",
		ParentName:  "country_id",
		ParentLabel: "Country",
		ParentValue: 4,
		Errors:      map[string]string{"name": "Name cannot be blank.", "country_id": "Country is invalid."},
	}

	var out bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&out, FormTemplate, form))
	assert.Contains(t, out.String(), "Name cannot be blank.")
	assert.Contains(t, out.String(), "Country is invalid.")
	assert.Contains(t, out.String(), `name="country_id" value="4"`)
}
