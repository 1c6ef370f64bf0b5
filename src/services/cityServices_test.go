package services

import (
	"context"
	"testing"

	"github.com/geodata/location-admin/src/dtos"
	"github.com/geodata/location-admin/src/models"
	"github.com/geodata/location-admin/src/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityLifecycle(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	seedCountries(t, db, models.CountryModel{ID: 1, Name: "Spain"})
	regions := NewRegionService(db, 20)
	svc := NewCityService(db, 20)

	north, err := regions.CreateRegion(ctx, 1, dtos.RegionCreateInput{Name: "Galicia"}, 0)
	require.NoError(t, err)
	south, err := regions.CreateRegion(ctx, 1, dtos.RegionCreateInput{Name: "Andalucia"}, 0)
	require.NoError(t, err)

	vigo, err := svc.CreateCity(ctx, north.ID, dtos.CityCreateInput{Name: "Vigo"}, 2)
	require.NoError(t, err)
	_, err = svc.CreateCity(ctx, north.ID, dtos.CityCreateInput{Name: "Lugo"}, 2)
	require.NoError(t, err)
	_, err = svc.CreateCity(ctx, south.ID, dtos.CityCreateInput{Name: "Sevilla"}, 2)
	require.NoError(t, err)

	got, err := svc.GetCityByID(ctx, vigo.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Region)
	require.NotNil(t, got.Region.Country)
	assert.Equal(t, "Galicia", got.Region.Name)
	assert.Equal(t, "Spain", got.Region.Country.Name)

	page, err := svc.SearchCities(ctx, north.ID, dtos.SearchParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.TotalCount)

	options, err := svc.ListOptions(ctx, north.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Vigo", "Lugo"}, []string{options[0].Name, options[1].Name})

	moved, err := svc.UpdateCity(ctx, vigo.ID, dtos.CityInput{Name: "Vigo", RegionID: south.ID}, 5)
	require.NoError(t, err)
	assert.Equal(t, south.ID, moved.RegionID)

	require.NoError(t, svc.DeleteCity(ctx, vigo.ID))
	_, err = svc.GetCityByID(ctx, vigo.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	page, err = svc.SearchCities(ctx, south.ID, dtos.SearchParams{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Sevilla", page.Items[0].Name)
}

func TestCityCreateRequiresRegion(t *testing.T) {
	db := testutil.NewDB(t)
	_, err := NewCityService(db, 20).CreateCity(context.Background(), 12, dtos.CityCreateInput{Name: "Atlantis"}, 0)
	assert.ErrorIs(t, err, ErrParentNotFound)
}
