package api

import (
	"context"

	"github.com/ecakir/cart-dashboard/internal/api/controller"
	"github.com/ecakir/cart-dashboard/internal/pkg/logger"
	"github.com/ecakir/cart-dashboard/internal/service/dashboard"
	"github.com/ecakir/cart-dashboard/internal/service/location"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(dashboardService *dashboard.Service, locationService *location.Service) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:8090"},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(dashboardService, locationService)

	dash := api.Group("/dashboard")
	dash.POST("/charts", cntrl.GetChartData)
	dash.POST("/cart-items", cntrl.GetCartItems)
	dash.POST("/customers", cntrl.GetCustomers)
	dash.POST("/autocomplete", cntrl.GetAutocomplete)
	dash.GET("/dropdown", cntrl.GetDropdownData)
	dash.GET("/health", cntrl.HealthCheck)

	locations := api.Group("/locations")
	locations.GET("/mappings", cntrl.GetLocationMappings)
	locations.GET("/provinces", cntrl.GetProvinces)
	locations.GET("/districts/:provinceCode", cntrl.GetDistricts)
	locations.GET("/province-name/:code", cntrl.GetProvinceName)
	locations.GET("/district-name/:provinceCode/:districtCode", cntrl.GetDistrictName)

	return svc, nil
}
