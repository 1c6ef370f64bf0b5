package routes

import (
	"net/http"

	"github.com/geodata/location-admin/src/middleware"
	"github.com/geodata/location-admin/src/services"
	"github.com/geodata/location-admin/src/views"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Options struct {
	PageSize    int
	CORSOrigins []string
}

// NewRouter builds the engine with every service, route and middleware wired
// to db.
func NewRouter(db *gorm.DB, opts Options) (*gin.Engine, error) {
	tmpl, err := views.Load()
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.Metrics())
	if len(opts.CORSOrigins) > 0 {
		router.Use(middleware.SetupCORS(opts.CORSOrigins))
	}
	router.SetHTMLTemplate(tmpl)

	// Services setup
	countryService := services.NewCountryService(db, opts.PageSize)
	regionService := services.NewRegionService(db, opts.PageSize)
	cityService := services.NewCityService(db, opts.PageSize)
	userService := services.NewUserService(db)
	importService := services.NewImportService(db)

	// Routes setup
	SetupUserRoutes(router, userService)
	SetupCountryRoutes(router, countryService)
	SetupRegionRoutes(router, regionService, countryService)
	SetupCityRoutes(router, cityService, regionService)
	SetupImportRoutes(router, importService)

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(middleware.Registry, promhttp.HandlerOpts{})))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/country/index")
	})

	return router, nil
}
