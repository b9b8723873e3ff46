package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/response"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/domain/service"
)

// Context keys set by Authenticate for downstream handlers.
const (
	KeyCID   = "cid"
	KeyEmail = "email"
)

// AuthMiddleware validates bearer access tokens on protected routes.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and places the authenticated
// identity on the echo context. Only session tokens pass; activation
// and reset tokens are rejected even when validly signed.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "TOKEN_INVALID", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || claims.Purpose != service.PurposeSession {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(KeyCID, claims.CID)
		c.Set(KeyEmail, claims.Email)

		return next(c)
	}
}
