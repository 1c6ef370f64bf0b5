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

type CityService struct {
	db       *gorm.DB
	pageSize int
}

// NewCityService creates a new instance of CityService
func NewCityService(db *gorm.DB, pageSize int) *CityService {
	return &CityService{db: db, pageSize: pageSize}
}

// SearchCities returns one page of the cities of a region matching params
func (s *CityService) SearchCities(ctx context.Context, regionID int, params dtos.SearchParams) (*dtos.Page[models.CityModel], error) {
	q := s.db.WithContext(ctx).
		Model(&models.CityModel{}).
		Where("region_id = ?", regionID).
		Scopes(filterScope(params))
	return paginate[models.CityModel](q, params, s.pageSize, "Region.Country")
}

// ListOptions returns every city of a region as dropdown options, sorted by
// name descending.
func (s *CityService) ListOptions(ctx context.Context, regionID int) ([]dtos.DepDropOption, error) {
	var cities []models.CityModel
	err := s.db.WithContext(ctx).
		Select("id", "name").
		Where("region_id = ?", regionID).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "name"}, Desc: true}).
		Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return lo.Map(cities, func(c models.CityModel, _ int) dtos.DepDropOption {
		return dtos.DepDropOption{ID: c.ID, Name: c.Name}
	}), nil
}

// GetCityByID retrieves a City record, with its region and country, by ID
func (s *CityService) GetCityByID(ctx context.Context, id int) (*models.CityModel, error) {
	return findByID[models.CityModel](ctx, s.db, id, "Region.Country")
}

// CreateCity creates a new City record under an existing region
func (s *CityService) CreateCity(ctx context.Context, regionID int, input dtos.CityCreateInput, actorID int) (*models.CityModel, error) {
	if err := s.requireRegion(ctx, regionID); err != nil {
		return nil, err
	}
	city := models.CityModel{Name: input.Name, RegionID: regionID}
	city.Stamp(actorID)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&city).Error; err != nil {
		return nil, err
	}
	return &city, nil
}

// UpdateCity updates an existing City record. A non-zero RegionID in input
// moves the city to that region.
func (s *CityService) UpdateCity(ctx context.Context, id int, input dtos.CityInput, actorID int) (*models.CityModel, error) {
	city, err := findByID[models.CityModel](ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]any{"name": input.Name}
	if input.RegionID > 0 && input.RegionID != city.RegionID {
		if err := s.requireRegion(ctx, input.RegionID); err != nil {
			return nil, err
		}
		updates["region_id"] = input.RegionID
	}
	if err := s.db.WithContext(ctx).Model(city).Omit(clause.Associations).Updates(auditUpdates(updates, actorID)).Error; err != nil {
		return nil, err
	}
	return s.GetCityByID(ctx, id)
}

// DeleteCity deletes a City record by ID
func (s *CityService) DeleteCity(ctx context.Context, id int) error {
	city, err := findByID[models.CityModel](ctx, s.db, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(city).Error
}

func (s *CityService) requireRegion(ctx context.Context, regionID int) error {
	ok, err := exists(ctx, s.db, &models.RegionModel{}, regionID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: region %d", ErrParentNotFound, regionID)
	}
	return nil
}
