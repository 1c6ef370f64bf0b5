package services

import (
	"context"
	"fmt"

	"github.com/geodata/location-admin/src/dtos"
	"github.com/geodata/location-admin/src/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RegionService struct {
	db       *gorm.DB
	pageSize int
}

// NewRegionService creates a new instance of RegionService
func NewRegionService(db *gorm.DB, pageSize int) *RegionService {
	return &RegionService{db: db, pageSize: pageSize}
}

// SearchRegions returns one page of the regions of a country matching params
func (s *RegionService) SearchRegions(ctx context.Context, countryID int, params dtos.SearchParams) (*dtos.Page[models.RegionModel], error) {
	q := s.db.WithContext(ctx).
		Model(&models.RegionModel{}).
		Where("country_id = ?", countryID).
		Scopes(filterScope(params))
	return paginate[models.RegionModel](q, params, s.pageSize, "Country")
}

// ListOptions returns every region of a country as dropdown options, sorted
// by name descending. An unknown country yields an empty list.
func (s *RegionService) ListOptions(ctx context.Context, countryID int) ([]dtos.DepDropOption, error) {
	var regions []models.RegionModel
	err := s.db.WithContext(ctx).
		Select("id", "name").
		Where("country_id = ?", countryID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "name"}, Desc: true}).
		Find(&regions).Error
	if err != nil {
		return nil, err
	}
	return lo.Map(regions, func(r models.RegionModel, _ int) dtos.DepDropOption {
		return dtos.DepDropOption{ID: r.ID, Name: r.Name}
	}), nil
}

// GetRegionByID retrieves a Region record, with its country, by ID
func (s *RegionService) GetRegionByID(ctx context.Context, id int) (*models.RegionModel, error) {
	return findByID[models.RegionModel](ctx, s.db, id, "Country")
}

// CreateRegion creates a new Region record under an existing country
func (s *RegionService) CreateRegion(ctx context.Context, countryID int, input dtos.RegionCreateInput, actorID int) (*models.RegionModel, error) {
	if err := s.requireCountry(ctx, countryID); err != nil {
		return nil, err
	}
	region := models.RegionModel{Name: input.Name, CountryID: countryID}
	region.Stamp(actorID)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&region).Error; err != nil {
		return nil, err
	}
	return &region, nil
}

// UpdateRegion updates an existing Region record. A non-zero CountryID in
// input moves the region to that country.
func (s *RegionService) UpdateRegion(ctx context.Context, id int, input dtos.RegionInput, actorID int) (*models.RegionModel, error) {
	region, err := findByID[models.RegionModel](ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{"name": input.Name}
	if input.CountryID > 0 && input.CountryID != region.CountryID {
		if err := s.requireCountry(ctx, input.CountryID); err != nil {
			return nil, err
		}
		updates["country_id"] = input.CountryID
	}
	if err := s.db.WithContext(ctx).Model(region).Omit(clause.Associations).Updates(auditUpdates(updates, actorID)).Error; err != nil {
		return nil, err
	}
	return s.GetRegionByID(ctx, id)
}

// DeleteRegion deletes a Region record by ID. Regions that still have cities
// are left untouched.
func (s *RegionService) DeleteRegion(ctx context.Context, id int) error {
	region, err := findByID[models.RegionModel](ctx, s.db, id)
	if err != nil {
		return err
	}
	return deleteUnlessReferenced(ctx, s.db, region, id, &models.CityModel{}, "region_id", "region", "cities")
}

func (s *RegionService) requireCountry(ctx context.Context, countryID int) error {
	ok, err := exists(ctx, s.db, &models.CountryModel{}, countryID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: country %d", ErrParentNotFound, countryID)
	}
	return nil
}
