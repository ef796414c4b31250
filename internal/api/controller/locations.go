package controller

import (
	"net/http"

	"github.com/ecakir/cart-dashboard/internal/domain"
	"github.com/ecakir/cart-dashboard/internal/pkg/constants"
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetLocationMappings(ctx echo.Context) error {
	mappings := c.locations.Mappings(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, domain.SuccessResponse(*mappings))
}

func (c *Controller) GetProvinces(ctx echo.Context) error {
	provinces := c.locations.Provinces(ctx.Request().Context())
	return ctx.JSON(http.StatusOK, domain.SuccessResponse(provinces))
}

func (c *Controller) GetDistricts(ctx echo.Context) error {
	provinceCode := ctx.Param("provinceCode")
	if provinceCode == "" {
		return constants.ErrMissingProvinceCode
	}

	districts := c.locations.Districts(ctx.Request().Context(), provinceCode)
	return ctx.JSON(http.StatusOK, domain.SuccessResponse(districts))
}

func (c *Controller) GetProvinceName(ctx echo.Context) error {
	code := ctx.Param("code")
	if code == "" {
		return constants.ErrMissingProvinceCode
	}

	name := c.locations.ProvinceName(ctx.Request().Context(), code)
	return ctx.JSON(http.StatusOK, domain.SuccessResponse(name))
}

func (c *Controller) GetDistrictName(ctx echo.Context) error {
	provinceCode := ctx.Param("provinceCode")
	districtCode := ctx.Param("districtCode")
	if provinceCode == "" || districtCode == "" {
		return constants.ErrMissingDistrictCodes
	}

	name := c.locations.DistrictName(ctx.Request().Context(), provinceCode, districtCode)
	return ctx.JSON(http.StatusOK, domain.SuccessResponse(name))
}
