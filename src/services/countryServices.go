package services

import (
	"context"

	"github.com/geodata/location-admin/src/dtos"
	"github.com/geodata/location-admin/src/models"
	"gorm.io/gorm"
)

type CountryService struct {
	db       *gorm.DB
	pageSize int
}

// NewCountryService creates a new instance of CountryService
func NewCountryService(db *gorm.DB, pageSize int) *CountryService {
	return &CountryService{db: db, pageSize: pageSize}
}

// SearchCountries returns one page of countries matching params
func (s *CountryService) SearchCountries(ctx context.Context, params dtos.SearchParams) (*dtos.Page[models.CountryModel], error) {
	q := s.db.WithContext(ctx).Model(&models.CountryModel{}).Scopes(filterScope(params))
	return paginate[models.CountryModel](q, params, s.pageSize)
}

// GetCountryByID retrieves a Country record by ID
func (s *CountryService) GetCountryByID(ctx context.Context, id int) (*models.CountryModel, error) {
	return findByID[models.CountryModel](ctx, s.db, id)
}

// CreateCountry creates a new Country record in the database
func (s *CountryService) CreateCountry(ctx context.Context, input dtos.CountryInput, actorID int) (*models.CountryModel, error) {
	country := models.CountryModel{Name: input.Name}
	country.Stamp(actorID)
	if err := s.db.WithContext(ctx).Create(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

// UpdateCountry updates an existing Country record
func (s *CountryService) UpdateCountry(ctx context.Context, id int, input dtos.CountryInput, actorID int) (*models.CountryModel, error) {
	country, err := s.GetCountryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := auditUpdates(map[string]any{"name": input.Name}, actorID)
	if err := s.db.WithContext(ctx).Model(country).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetCountryByID(ctx, id)
}

// DeleteCountry deletes a Country record by ID. Countries that still have
// regions are left untouched.
func (s *CountryService) DeleteCountry(ctx context.Context, id int) error {
	country, err := s.GetCountryByID(ctx, id)
	if err != nil {
		return err
	}
	return deleteUnlessReferenced(ctx, s.db, country, id, &models.RegionModel{}, "country_id", "country", "regions")
}
