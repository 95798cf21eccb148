package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shoplane/storefront-system/internal/api/handler"
	"github.com/shoplane/storefront-system/internal/api/middleware"
	"github.com/shoplane/storefront-system/internal/core/domain"
	"github.com/shoplane/storefront-system/internal/core/service"
	"github.com/shoplane/storefront-system/internal/infrastructure/config"
	storemongo "github.com/shoplane/storefront-system/internal/infrastructure/db/mongo"
	storeredis "github.com/shoplane/storefront-system/internal/infrastructure/db/redis"
	healthhandlers "github.com/shoplane/storefront-system/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	userRepo := storemongo.NewUserRepository(db)
	productRepo := storemongo.NewProductRepository(db)
	orderRepo := storemongo.NewOrderRepository(db)
	cartStore := storeredis.NewCartStore(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	productService := service.NewProductService(productRepo, log)
	cartService := service.NewCartService(cartStore, productRepo, log)
	orderService := service.NewOrderService(orderRepo, productRepo, userRepo, cartStore, log)

	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL, cfg.IsProduction())
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)

	requireAuth := middleware.Auth(authService)
	requireCustomer := middleware.RequireRole(domain.RoleCustomer)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/v1/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, requireAuth)

	// --- Catalog (public reads, admin mutations) ---
	e.GET("/v1/products", productHandler.List)
	e.GET("/v1/products/:id", productHandler.Get)
	e.POST("/v1/products", productHandler.Create, requireAuth, requireAdmin)
	e.PUT("/v1/products/:id", productHandler.Update, requireAuth, requireAdmin)
	e.DELETE("/v1/products/:id", productHandler.Delete, requireAuth, requireAdmin)

	// --- Cart (customer) ---
	cart := e.Group("/v1/cart", requireAuth, requireCustomer)
	cart.GET("", cartHandler.Get)
	cart.DELETE("", cartHandler.Clear)
	cart.POST("/items", cartHandler.AddItem)
	cart.PUT("/items/:product_id", cartHandler.UpdateItem)
	cart.DELETE("/items/:product_id", cartHandler.RemoveItem)

	// --- Orders (customer) ---
	orders := e.Group("/v1/orders", requireAuth, requireCustomer)
	orders.POST("", orderHandler.Place)
	orders.GET("", orderHandler.List)

	// --- Back-office (admin) ---
	admin := e.Group("/v1/admin", requireAuth, requireAdmin)
	admin.GET("/orders", orderHandler.ListAll)
	admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
	admin.GET("/stats", orderHandler.Stats)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
