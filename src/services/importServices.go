package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/geodata/location-admin/src/dtos"
	"github.com/geodata/location-admin/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ImportService loads the country/region/city dataset from a spreadsheet.
type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// ImportXLSX reads the first sheet of r. Each row holds the columns
// country | region | city; existing records are matched by name under their
// parent and missing ones are created. A leading header row is skipped.
func (s *ImportService) ImportXLSX(ctx context.Context, r io.Reader, actorID int) (*dtos.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	result := &dtos.ImportResult{Errors: []string{}}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, row := range rows {
			country, region, city := cell(row, 0), cell(row, 1), cell(row, 2)
			if i == 0 && strings.EqualFold(country, "country") {
				continue
			}
			if country == "" && region == "" && city == "" {
				continue
			}
			if country == "" {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: country is required", i+1))
				continue
			}
			if region == "" && city != "" {
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: city %q has no region", i+1, city))
				continue
			}
			if err := importRow(tx, country, region, city, actorID); err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func importRow(tx *gorm.DB, countryName, regionName, cityName string, actorID int) error {
	country := models.CountryModel{Name: countryName}
	if err := firstOrCreate(tx, &country, actorID, "name = ?", countryName); err != nil {
		return err
	}
	if regionName == "" {
		return nil
	}

	region := models.RegionModel{Name: regionName, CountryID: country.ID}
	if err := firstOrCreate(tx, &region, actorID, "country_id = ? AND name = ?", country.ID, regionName); err != nil {
		return err
	}
	if cityName == "" {
		return nil
	}

	city := models.CityModel{Name: cityName, RegionID: region.ID}
	return firstOrCreate(tx, &city, actorID, "region_id = ? AND name = ?", region.ID, cityName)
}

type stampable interface {
	Stamp(actorID int)
}

// firstOrCreate loads the row matching the condition into record, or inserts
// record when there is none.
func firstOrCreate[T stampable](tx *gorm.DB, record T, actorID int, query string, args ...any) error {
	err := tx.Where(query, args...).First(record).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	record.Stamp(actorID)
	return tx.Omit(clause.Associations).Create(record).Error
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
