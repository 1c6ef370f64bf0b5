package services

import (
	"context"
	"math"
	"testing"

	"github.com/geodata/location-admin/src/dtos"
	"github.com/geodata/location-admin/src/models"
	"github.com/geodata/location-admin/src/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name        string
		params      dtos.SearchParams
		defaultSize int
		page, per   int
	}{
		{"defaults", dtos.SearchParams{}, 20, 1, 20},
		{"negative page", dtos.SearchParams{Page: -3, PerPage: 5}, 20, 1, 5},
		{"capped", dtos.SearchParams{Page: 2, PerPage: 500}, 20, 2, MaxPageSize},
		{"no configured size", dtos.SearchParams{}, 0, 1, DefaultPageSize},
		{"huge page", dtos.SearchParams{Page: math.MaxInt}, 20, math.MaxInt/20 + 1, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, per := normalizePage(tt.params, tt.defaultSize)
			assert.Equal(t, tt.page, page)
			assert.Equal(t, tt.per, per)
			assert.GreaterOrEqual(t, (page-1)*per, 0)
		})
	}
}

func TestSearchNameMatchesWildcardsLiterally(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	seedCountries(t, db,
		models.CountryModel{Name: "Spain"},
		models.CountryModel{Name: "50% Land"},
		models.CountryModel{Name: "Axb"},
	)
	svc := NewCountryService(db, 20)

	page, err := svc.SearchCountries(ctx, dtos.SearchParams{Name: "%"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "50% Land", page.Items[0].Name)

	page, err = svc.SearchCountries(ctx, dtos.SearchParams{Name: "a_b"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalCount)
	assert.Empty(t, page.Items)

	page, err = svc.SearchCountries(ctx, dtos.SearchParams{Name: `\`})
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.TotalCount)
}

func TestSearchPastLastPageIsEmpty(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	seedCountries(t, db, models.CountryModel{Name: "Spain"})
	svc := NewCountryService(db, 20)

	for _, p := range []int{2, math.MaxInt/20 + 2, math.MaxInt} {
		page, err := svc.SearchCountries(ctx, dtos.SearchParams{Page: p})
		require.NoError(t, err)
		assert.Empty(t, page.Items, "page %d", p)
		assert.Equal(t, int64(1), page.TotalCount)
		assert.Equal(t, 1, page.PageCount)
	}
}
