// Package handler contains the HTTP handlers for the application.
// Handlers bind and validate the request, delegate to a use case, and
// render the unified response envelope. Query-string identifiers and
// filters are passed through raw; the use cases own their parsing.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/response"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/usecase"
)

// pageQuery lifts the raw pagination parameters off the query string.
func pageQuery(c echo.Context) usecase.PageQuery {
	return usecase.PageQuery{
		Page:  c.QueryParam("page"),
		Limit: c.QueryParam("limit"),
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
