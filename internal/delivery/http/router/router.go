// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/middleware"
	"github.com/EhsanulSakib/wool-e-commerce-backend/internal/delivery/http/router/handler"
)

// RouterParams holds the handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	OrderHandler     *handler.OrderHandler
	DeliveryHandler  *handler.DeliveryHandler
	ProductHandler   *handler.ProductHandler
	AttributeHandler *handler.AttributeHandler
	VariantHandler   *handler.VariantHandler
	ReviewHandler    *handler.ReviewHandler
	UserHandler      *handler.UserHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.PUT("/activate-account", r.params.AuthHandler.ActivateAccount)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.POST("/forgot-password", r.params.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.params.AuthHandler.ResetPassword)

		// Session-scoped endpoints require a valid access token.
		authGroup.POST("/logout", r.params.AuthHandler.Logout, r.params.AuthMiddleware.Authenticate)
		authGroup.GET("/session", r.params.AuthHandler.Session, r.params.AuthMiddleware.Authenticate)
	}

	orderGroup := e.Group("/order")
	{
		orderGroup.GET("/single-order", r.params.OrderHandler.GetOrder)
		orderGroup.GET("/multiple-orders", r.params.OrderHandler.ListOrders)
		orderGroup.GET("/user-orders", r.params.OrderHandler.ListUserOrders)
		orderGroup.POST("/create-order", r.params.OrderHandler.CreateOrder)
		orderGroup.PUT("/update-order", r.params.OrderHandler.UpdateOrder)
		orderGroup.POST("/delete-order", r.params.OrderHandler.DeleteOrder)
	}

	deliveryGroup := e.Group("/delivery")
	{
		deliveryGroup.GET("/single-delivery", r.params.DeliveryHandler.GetDelivery)
		deliveryGroup.GET("/multiple-deliveries", r.params.DeliveryHandler.ListDeliveries)
		deliveryGroup.POST("/create-delivery", r.params.DeliveryHandler.CreateDelivery)
		deliveryGroup.PUT("/update-delivery", r.params.DeliveryHandler.UpdateDelivery)
		deliveryGroup.DELETE("/delete-delivery", r.params.DeliveryHandler.DeleteDelivery)
	}

	productGroup := e.Group("/product")
	{
		productGroup.GET("/single-product", r.params.ProductHandler.GetProduct)
		productGroup.GET("/multiple-products", r.params.ProductHandler.ListProducts)
		productGroup.POST("/create-product", r.params.ProductHandler.CreateProduct)
		productGroup.PUT("/update-product", r.params.ProductHandler.UpdateProduct)
		productGroup.DELETE("/delete-product", r.params.ProductHandler.DeleteProduct)
	}

	attributeGroup := e.Group("/attribute")
	{
		attributeGroup.GET("/single-attribute", r.params.AttributeHandler.GetAttribute)
		attributeGroup.GET("/multiple-attributes", r.params.AttributeHandler.ListAttributes)
		attributeGroup.POST("/create-attribute", r.params.AttributeHandler.CreateAttribute)
		attributeGroup.PUT("/update-attribute", r.params.AttributeHandler.UpdateAttribute)
		attributeGroup.DELETE("/delete-attribute", r.params.AttributeHandler.DeleteAttribute)
	}

	variantGroup := e.Group("/variant")
	{
		variantGroup.GET("/single-variant", r.params.VariantHandler.GetVariant)
		variantGroup.GET("/multiple-variants", r.params.VariantHandler.ListVariants)
		variantGroup.GET("/all-variants", r.params.VariantHandler.ListAllVariants)
		variantGroup.POST("/create-variant", r.params.VariantHandler.CreateVariant)
		variantGroup.PUT("/update-variant", r.params.VariantHandler.UpdateVariant)
		variantGroup.DELETE("/delete-variant", r.params.VariantHandler.DeleteVariant)
	}

	reviewGroup := e.Group("/review")
	{
		reviewGroup.GET("/single-review", r.params.ReviewHandler.GetReview)
		reviewGroup.GET("/multiple-reviews", r.params.ReviewHandler.ListReviews)
		reviewGroup.POST("/create-review", r.params.ReviewHandler.CreateReview)
		reviewGroup.PUT("/update-review", r.params.ReviewHandler.UpdateReview)
		reviewGroup.DELETE("/delete-review", r.params.ReviewHandler.DeleteReview)
	}

	userGroup := e.Group("/user")
	{
		userGroup.GET("/single-user", r.params.UserHandler.GetUser)
		userGroup.GET("/multiple-users", r.params.UserHandler.ListUsers)
		userGroup.POST("/create-user", r.params.UserHandler.CreateUser)
		userGroup.PUT("/update-user", r.params.UserHandler.UpdateUser)
		userGroup.PUT("/update-role", r.params.UserHandler.UpdateUserRole)
		userGroup.PUT("/update-status", r.params.UserHandler.UpdateUserStatus)
		userGroup.POST("/delete-user", r.params.UserHandler.DeleteUsers)
	}
}
