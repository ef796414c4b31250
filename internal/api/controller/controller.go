package controller

import (
	"github.com/ecakir/cart-dashboard/internal/service/dashboard"
	"github.com/ecakir/cart-dashboard/internal/service/location"
)

type Controller struct {
	dashboard *dashboard.Service
	locations *location.Service
}

func NewController(dashboardService *dashboard.Service, locationService *location.Service) *Controller {
	return &Controller{
		dashboard: dashboardService,
		locations: locationService,
	}
}
