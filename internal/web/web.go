package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ecakir/cart-dashboard/internal/domain"
	"github.com/ecakir/cart-dashboard/internal/pkg/constants"
	"github.com/ecakir/cart-dashboard/internal/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// WebService is the browser-facing tier: it forwards dashboard requests to
// the upstream API and mirrors the envelope back. Upstream failures surface
// as explicit errors; outages are not masked with placeholder data.
type WebService struct {
	router *echo.Echo
	client *Client
}

func (svc *WebService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *WebService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewWebService(client *Client) *WebService {
	svc := &WebService{router: echo.New(), client: client}
	svc.router.HideBanner = true
	svc.router.HTTPErrorHandler = webErrorHandler
	svc.router.Use(middleware.Logger())

	api := svc.router.Group("/api")

	dash := api.Group("/dashboard")
	dash.POST("/charts", svc.charts)
	dash.POST("/cart-items", svc.cartItems)
	dash.POST("/customers", svc.customers)
	dash.POST("/autocomplete", svc.autocomplete)
	dash.GET("/dropdown", svc.dropdown)

	locations := api.Group("/locations")
	locations.GET("/provinces", svc.provinces)
	locations.GET("/districts/:provinceCode", svc.districts)

	svc.router.GET("/health", svc.health)

	return svc
}

var errUpstreamUnreachable = constants.NewCodedError(http.StatusBadGateway, "dashboard api is not reachable")

func webErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var coded *constants.CodedError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &coded):
		code = coded.Code()
		message = coded.Error()
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	logger.Errorf(ctx.Request().Context(), "request failed, path-%s: %s", ctx.Path(), err.Error())

	if jsonErr := ctx.JSON(code, domain.ErrorResponse[struct{}](message)); jsonErr != nil {
		logger.Errorf(ctx.Request().Context(), "failed to write error response: %s", jsonErr.Error())
	}
}

func (svc *WebService) charts(ctx echo.Context) error {
	var filter domain.DashboardFilter
	if err := ctx.Bind(&filter); err != nil {
		return err
	}
	return forwardPost[domain.ChartData](svc, ctx, "/api/v1/dashboard/charts", filter)
}

func (svc *WebService) cartItems(ctx echo.Context) error {
	var req domain.CartItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	return forwardPost[domain.PagedResponse[domain.CartItem]](svc, ctx, "/api/v1/dashboard/cart-items", req)
}

func (svc *WebService) customers(ctx echo.Context) error {
	var req domain.CustomersRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	return forwardPost[domain.PagedResponse[domain.Customer]](svc, ctx, "/api/v1/dashboard/customers", req)
}

func (svc *WebService) autocomplete(ctx echo.Context) error {
	var req domain.AutocompleteRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	return forwardPost[[]domain.AutocompleteItem](svc, ctx, "/api/v1/dashboard/autocomplete", req)
}

func (svc *WebService) dropdown(ctx echo.Context) error {
	path := "/api/v1/dashboard/dropdown?field=" + ctx.QueryParam("field") + "&index=" + ctx.QueryParam("index")
	return forwardGet[[]domain.DropdownItem](svc, ctx, path)
}

func (svc *WebService) provinces(ctx echo.Context) error {
	return forwardGet[[]domain.ProvinceItem](svc, ctx, "/api/v1/locations/provinces")
}

func (svc *WebService) districts(ctx echo.Context) error {
	return forwardGet[[]domain.DistrictItem](svc, ctx, "/api/v1/locations/districts/"+ctx.Param("provinceCode"))
}

func (svc *WebService) health(ctx echo.Context) error {
	return forwardGet[bool](svc, ctx, "/api/v1/dashboard/health")
}

func forwardPost[T any](svc *WebService, ctx echo.Context, path string, body any) error {
	envelope, status, err := postJSON[T](ctx.Request().Context(), svc.client, path, body)
	if err != nil {
		logger.Errorf(ctx.Request().Context(), "upstream call failed, path-%s: %s", path, err.Error())
		return errUpstreamUnreachable
	}
	return ctx.JSON(status, envelope)
}

func forwardGet[T any](svc *WebService, ctx echo.Context, path string) error {
	envelope, status, err := getJSON[T](ctx.Request().Context(), svc.client, path)
	if err != nil {
		logger.Errorf(ctx.Request().Context(), "upstream call failed, path-%s: %s", path, err.Error())
		return errUpstreamUnreachable
	}
	return ctx.JSON(status, envelope)
}
