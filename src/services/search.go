package services

import (
	"math"
	"strings"

	"github.com/geodata/location-admin/src/dtos"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var sortableColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// likeEscaper makes LIKE metacharacters in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// filterScope applies the free-text and audit filters of an index listing.
func filterScope(params dtos.SearchParams) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if params.ID > 0 {
			q = q.Where("id = ?", params.ID)
		}
		if name := strings.TrimSpace(params.Name); name != "" {
			q = q.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(name))+"%")
		}
		if params.CreatedBy > 0 {
			q = q.Where("created_by = ?", params.CreatedBy)
		}
		if params.UpdatedBy > 0 {
			q = q.Where("updated_by = ?", params.UpdatedBy)
		}
		return q
	}
}

// sortScope orders by the "sort" parameter ("name", "-name", ...), falling
// back to ascending id for an empty or unknown attribute.
func sortScope(sort string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		desc := strings.HasPrefix(sort, "-")
		column, ok := sortableColumns[strings.TrimPrefix(sort, "-")]
		if !ok {
			column, desc = "id", false
		}
		return q.Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: desc})
	}
}

// normalizePage clamps page and per-page into their valid ranges. page is
// capped so that the row offset of the page fits in an int.
func normalizePage(params dtos.SearchParams, defaultSize int) (page, perPage int) {
	page, perPage = params.Page, params.PerPage
	if page < 1 {
		page = 1
	}
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if perPage < 1 {
		perPage = defaultSize
	}
	if perPage > MaxPageSize {
		perPage = MaxPageSize
	}
	if maxPage := math.MaxInt/perPage + 1; page > maxPage {
		page = maxPage
	}
	return page, perPage
}

// paginate counts the filtered rows of q and loads the requested page into a
// new Page. q must already carry the model and filters; preloads are applied
// to the page query only.
func paginate[T any](q *gorm.DB, params dtos.SearchParams, defaultSize int, preloads ...string) (*dtos.Page[T], error) {
	page, perPage := normalizePage(params, defaultSize)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	pageCount := int((total + int64(perPage) - 1) / int64(perPage))
	result := &dtos.Page[T]{
		Items:      []T{},
		TotalCount: total,
		Page:       page,
		PerPage:    perPage,
		PageCount:  pageCount,
	}
	offset := (page - 1) * perPage
	if int64(offset) >= total {
		return result, nil
	}

	for _, p := range preloads {
		q = q.Preload(p)
	}

	items := make([]T, 0, perPage)
	err := q.Scopes(sortScope(params.Sort)).
		Offset(offset).
		Limit(perPage).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	result.Items = items
	return result, nil
}
