// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-client/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-client/internal/pkg/auth"
	"github.com/your-org/storefront-client/internal/pkg/receipt"
	"github.com/your-org/storefront-client/internal/store"
)

// Dependencies are what the view routes are built from
type Dependencies struct {
	Config  *config.Config
	Store   *store.Store
	Logger  *logrus.Logger
	Cookies handlers.CookieSource
}

// SetupViewRoutes sets up the JSON view model routes
func SetupViewRoutes(rg *gin.RouterGroup, deps Dependencies) {
	cfg := deps.Config

	sessionHandler := handlers.NewSessionHandler(deps.Store, auth.NewTokenInspector(cfg.API), deps.Cookies)
	catalogHandler := handlers.NewCatalogHandler(deps.Store, cfg.Views)
	cartHandler := handlers.NewCartHandler(deps.Store)
	receiptHandler := handlers.NewReceiptHandler(deps.Store, receipt.NewService(cfg.Receipt), deps.Logger)
	authHandler := handlers.NewAuthHandler(deps.Store)
	orderHandler := handlers.NewOrderHandler(deps.Store)

	rg.Use(middleware.Timeout(cfg.Server.HandlerTimeout))
	{
		rg.GET("/session", sessionHandler.GetSession)
		rg.GET("/admin", sessionHandler.GetAdminView)

		rg.GET("/categories", catalogHandler.Categories)
		rg.GET("/menu", catalogHandler.Menu)
		rg.GET("/home", catalogHandler.Home)
		rg.POST("/catalog/refresh", catalogHandler.Refresh)

		rg.POST("/login", authHandler.Login)
		rg.POST("/logout", authHandler.Logout)
		rg.POST("/register", authHandler.Register)
		rg.POST("/admin/login", authHandler.AdminLogin)
	}

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/lines", cartHandler.AddLine)
		cart.DELETE("/lines/:menuId", cartHandler.RemoveLine)
		cart.GET("/receipt.pdf", receiptHandler.GetReceipt)
	}

	orders := rg.Group("/orders")
	{
		orders.GET("", orderHandler.GetOrders)
		orders.POST("", orderHandler.PlaceOrder)
	}

	bookings := rg.Group("/bookings")
	{
		bookings.GET("", orderHandler.GetBookings)
		bookings.POST("", orderHandler.CreateBooking)
	}
}

// SetupEventRoutes sets up the websocket change stream. It is kept out of
// the view group so the handler timeout does not cut long-lived streams.
func SetupEventRoutes(r *gin.Engine, deps Dependencies) {
	eventsHandler := handlers.NewEventsHandler(deps.Store, deps.Logger, middleware.OriginAllowed(deps.Config))
	r.GET("/events", eventsHandler.Stream)
}
