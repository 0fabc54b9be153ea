// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"feira/internal/delivery/api/middleware"
	"feira/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	SupplierHandler *handler.SupplierHandler
	StallHandler    *handler.StallHandler
	AddressHandler  *handler.AddressHandler
	ProductHandler  *handler.ProductHandler
	SearchHandler   *handler.SearchHandler
	ChatHandler     *handler.ChatHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	supplierHandler *handler.SupplierHandler
	stallHandler    *handler.StallHandler
	addressHandler  *handler.AddressHandler
	productHandler  *handler.ProductHandler
	searchHandler   *handler.SearchHandler
	chatHandler     *handler.ChatHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		supplierHandler: params.SupplierHandler,
		stallHandler:    params.StallHandler,
		addressHandler:  params.AddressHandler,
		productHandler:  params.ProductHandler,
		searchHandler:   params.SearchHandler,
		chatHandler:     params.ChatHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	apiV1.POST("/auth/login", r.authHandler.Login)

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PATCH("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	suppliersGroup := apiV1.Group("/suppliers")
	{
		suppliersGroup.POST("", r.supplierHandler.CreateSupplier)
		suppliersGroup.GET("", r.supplierHandler.ListSuppliers)
		suppliersGroup.GET("/:id", r.supplierHandler.GetSupplier)
		suppliersGroup.PATCH("/:id", r.supplierHandler.UpdateSupplier)
		suppliersGroup.DELETE("/:id", r.supplierHandler.DeleteSupplier)
	}

	stallsGroup := apiV1.Group("/stalls")
	{
		stallsGroup.POST("", r.stallHandler.CreateStall)
		stallsGroup.GET("", r.stallHandler.ListStalls)
		stallsGroup.GET("/:id", r.stallHandler.GetStall)
		stallsGroup.PATCH("/:id", r.stallHandler.UpdateStall)
		stallsGroup.DELETE("/:id", r.stallHandler.DeleteStall)
		stallsGroup.GET("/:id/qrcode", r.stallHandler.StallQRCode)
	}

	addressesGroup := apiV1.Group("/addresses")
	{
		addressesGroup.GET("/:id", r.addressHandler.GetAddress)
		addressesGroup.PATCH("/:id", r.addressHandler.UpdateAddress)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PATCH("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
		productsGroup.PUT("/:id/image", r.productHandler.UploadProductImage)
		productsGroup.GET("/:id/image", r.productHandler.GetProductImage)
	}

	searchGroup := apiV1.Group("/search")
	{
		searchGroup.GET("", r.searchHandler.Search)
		searchGroup.GET("/report", r.searchHandler.SearchReport)
	}

	// Chats act on behalf of the token subject.
	chatsGroup := apiV1.Group("/chats")
	chatsGroup.Use(r.authMiddleware.Authenticate)
	{
		chatsGroup.POST("", r.chatHandler.OpenChat)
		chatsGroup.GET("", r.chatHandler.ListChats)
		chatsGroup.GET("/:id/messages", r.chatHandler.GetMessages)
		chatsGroup.POST("/:id/messages", r.chatHandler.SendMessage)
		chatsGroup.POST("/:id/read", r.chatHandler.MarkRead)
	}
}
