package router

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/middleware"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/router/handler"
)

func registeredRoutes(t *testing.T) map[string]string {
	t.Helper()

	e := echo.New()
	r := NewRouter(RouterParams{
		AuthHandler:      handler.NewAuthHandler(nil),
		OrderHandler:     handler.NewOrderHandler(nil),
		DeliveryHandler:  handler.NewDeliveryHandler(nil),
		ProductHandler:   handler.NewProductHandler(nil),
		AttributeHandler: handler.NewAttributeHandler(nil),
		VariantHandler:   handler.NewVariantHandler(nil),
		ReviewHandler:    handler.NewReviewHandler(nil),
		UserHandler:      handler.NewUserHandler(nil),
		AuthMiddleware:   &middleware.AuthMiddleware{},
	})
	r.RegisterRoutes(e)

	routes := make(map[string]string, len(e.Routes()))
	for _, route := range e.Routes() {
		routes[route.Path] = route.Method
	}

	return routes
}

func TestRegisterRoutes_AuthSurface(t *testing.T) {
	routes := registeredRoutes(t)

	assert.Equal(t, http.MethodPost, routes["/auth/register"])
	assert.Equal(t, http.MethodPost, routes["/auth/login"])
	// Activation is a state transition on an existing account.
	assert.Equal(t, http.MethodPut, routes["/auth/activate-account"])
	assert.Equal(t, http.MethodPost, routes["/auth/refresh"])
	assert.Equal(t, http.MethodPost, routes["/auth/forgot-password"])
	assert.Equal(t, http.MethodPost, routes["/auth/reset-password"])
	assert.Equal(t, http.MethodPost, routes["/auth/logout"])
	assert.Equal(t, http.MethodGet, routes["/auth/session"])
}

func TestRegisterRoutes_OrderDeliverySurface(t *testing.T) {
	routes := registeredRoutes(t)

	assert.Equal(t, http.MethodPost, routes["/order/create-order"])
	assert.Equal(t, http.MethodPut, routes["/order/update-order"])
	assert.Equal(t, http.MethodPost, routes["/delivery/create-delivery"])
	assert.Equal(t, http.MethodPut, routes["/delivery/update-delivery"])
}
