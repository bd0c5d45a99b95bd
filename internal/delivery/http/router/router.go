// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tiffin/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ListingHandler  *handler.ListingHandler
	CheckoutHandler *handler.CheckoutHandler
	BoardHandler    *handler.BoardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	listingHandler  *handler.ListingHandler
	checkoutHandler *handler.CheckoutHandler
	boardHandler    *handler.BoardHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		listingHandler:  params.ListingHandler,
		checkoutHandler: params.CheckoutHandler,
		boardHandler:    params.BoardHandler,
	}
}

// RegisterRoutes sets up one route per navigable screen plus the actions
// each screen exposes. Navigation is a plain request; every handler
// re-derives the session before rendering.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Auth screens
	e.GET("/login", r.authHandler.LoginScreen)
	e.POST("/login", r.authHandler.Login)
	e.POST("/logout", r.authHandler.Logout)
	e.GET("/signup", r.authHandler.SignupScreen)
	e.POST("/signup", r.authHandler.Signup)
	e.GET("/signup/vendor", r.authHandler.VendorSignupScreen)
	e.POST("/signup/vendor", r.authHandler.VendorSignup)
	e.GET("/forgot-password", r.authHandler.ForgotPasswordScreen)
	e.POST("/forgot-password", r.authHandler.ForgotPassword)

	// Listing screen
	e.GET("/listing", r.listingHandler.Listing)
	e.POST("/listing/select", r.listingHandler.Select)

	// Checkout screen and its state transitions
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.GET("", r.checkoutHandler.Checkout)
		checkoutGroup.POST("/quantity", r.checkoutHandler.Quantity)
		checkoutGroup.POST("/tier", r.checkoutHandler.Tier)
		checkoutGroup.POST("/address", r.checkoutHandler.Address)
		checkoutGroup.POST("/submit", r.checkoutHandler.Submit)
		checkoutGroup.POST("/confirm", r.checkoutHandler.Confirm)
		checkoutGroup.POST("/cancel", r.checkoutHandler.Cancel)
	}

	// Boards
	e.GET("/contact", r.boardHandler.Contact)
	e.POST("/contact", r.boardHandler.SubmitContact)
	e.GET("/feedback", r.boardHandler.Feedback)
	e.POST("/feedback", r.boardHandler.SubmitFeedback)
}
