package controller

import (
	"net/http"

	"github.com/ecakir/cart-dashboard/internal/domain"
	"github.com/ecakir/cart-dashboard/internal/pkg/constants"
	"github.com/ecakir/cart-dashboard/internal/service/dashboard"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetChartData(ctx echo.Context) error {
	var filter domain.DashboardFilter
	if err := ctx.Bind(&filter); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	data, err := c.dashboard.ChartData(reqCtx, filter)
	if err != nil {
		return err
	}

	// Province performance buckets key by code; show names instead.
	for i := range data.ProvincePerformance {
		data.ProvincePerformance[i].Label = c.locations.ProvinceName(reqCtx, data.ProvincePerformance[i].Key)
	}

	return ctx.JSON(http.StatusOK, domain.SuccessResponse(*data))
}

func (c *Controller) GetCartItems(ctx echo.Context) error {
	var req domain.CartItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	page, err := c.dashboard.CartItems(ctx.Request().Context(), req.Filter, req.Pagination)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.SuccessResponse(*page))
}

func (c *Controller) GetCustomers(ctx echo.Context) error {
	var req domain.CustomersRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	page, err := c.dashboard.Customers(reqCtx, req.Filter, req.Pagination)
	if err != nil {
		return err
	}

	// Profiles store location codes; resolve them to display names. The
	// district lookup needs the original province code, so it runs first.
	for i := range page.Items {
		provinceCode := page.Items[i].Province
		if page.Items[i].District != "" {
			page.Items[i].District = c.locations.DistrictName(reqCtx, provinceCode, page.Items[i].District)
		}
		if provinceCode != "" {
			page.Items[i].Province = c.locations.ProvinceName(reqCtx, provinceCode)
		}
	}

	return ctx.JSON(http.StatusOK, domain.SuccessResponse(*page))
}

func (c *Controller) GetAutocomplete(ctx echo.Context) error {
	var req domain.AutocompleteRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	req.Field = domain.CleanValue(req.Field)
	req.Index = domain.CleanValue(req.Index)
	if req.Field == "" || req.Index == "" {
		return constants.ErrMissingFieldIndex
	}

	items, err := c.dashboard.Autocomplete(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.SuccessResponse(items))
}

func (c *Controller) GetDropdownData(ctx echo.Context) error {
	field, index, ok := dashboard.ValidDropdownParams(
		ctx.QueryParam("field"),
		ctx.QueryParam("index"),
	)
	if !ok {
		return constants.ErrMissingFieldIndex
	}

	items, err := c.dashboard.Dropdown(ctx.Request().Context(), field, index)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, domain.SuccessResponse(items))
}

func (c *Controller) HealthCheck(ctx echo.Context) error {
	if err := c.dashboard.Health(ctx.Request().Context()); err != nil {
		return constants.ErrEngineUnavailable
	}

	return ctx.JSON(http.StatusOK, domain.SuccessResponseMsg(true, "search engine connection ok"))
}
