package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/electriclarrys/shop-api/internal/api/handler"
	"github.com/electriclarrys/shop-api/internal/api/middleware"
	"github.com/electriclarrys/shop-api/internal/core/service"
	"github.com/electriclarrys/shop-api/internal/infrastructure/config"
	mongodb "github.com/electriclarrys/shop-api/internal/infrastructure/db/mongo"
	redisdb "github.com/electriclarrys/shop-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/electriclarrys/shop-api/internal/infrastructure/http/handlers"
	"github.com/electriclarrys/shop-api/internal/infrastructure/payment"
	"github.com/electriclarrys/shop-api/internal/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env == "production")

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("shop"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.AccessTokenSecret, cfg.RefreshTokenSecret)

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)

	authService := service.NewAuthService(userRepo, codec, service.AuthConfig{
		AccessTTL:        cfg.AccessTokenTTL,
		RefreshAccessTTL: cfg.RefreshAccessTokenTTL,
		RefreshTTL:       cfg.RefreshTokenTTL,
		BcryptCost:       cfg.BcryptCost,
	}, log)
	userService := service.NewUserService(userRepo, cartRepo, cfg.BcryptCost, log)
	productService := service.NewProductService(productRepo, log)
	cartService := service.NewCartService(cartRepo, log)
	orderService := service.NewOrderService(orderRepo, log)
	gateway := payment.NewSquareClient(cfg.Square.AccessToken, cfg.Square.Environment)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, orderService, cartService)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(gateway)

	auth := middleware.Auth(codec, log)
	employee := middleware.RequireEmployee()
	admin := middleware.RequireAdmin()
	loginLimiter := middleware.LoginRateLimit(
		redisdb.NewLoginLimiter(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow), log)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login, loginLimiter)
	e.POST("/auth/register", authHandler.Register)
	e.GET("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)

	// --- User routes ---
	users := e.Group("/users", auth)
	users.GET("", userHandler.List, employee)
	users.GET("/stats", userHandler.Stats, admin)
	users.GET("/username/:username", userHandler.GetByUsername, employee)
	users.GET("/:id", userHandler.Get, middleware.RequireSameUserOrAdmin("id"))
	users.GET("/:id/orders", userHandler.Orders, middleware.RequireSameUserOrAdmin("id"))
	users.GET("/:id/cart", userHandler.Cart, middleware.RequireSameUserOrAdmin("id"))
	users.POST("", userHandler.Create, admin)
	users.PUT("/:id", userHandler.Update, middleware.RequireSameUserOrAdmin("id"))
	users.DELETE("/:id", userHandler.Delete, admin)

	// --- Product routes (reads are public) ---
	e.GET("/products", productHandler.List)
	e.GET("/products/category/:category", productHandler.ByCategory)
	e.GET("/products/tag/:tag", productHandler.ByTag)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, auth, employee)
	e.PUT("/products/:id", productHandler.Update, auth, employee)
	e.DELETE("/products/:id", productHandler.Delete, auth, employee)

	// --- Cart routes ---
	carts := e.Group("/carts", auth)
	carts.GET("", cartHandler.List, admin)
	carts.GET("/user/:userId", cartHandler.GetByUser, middleware.RequireSameUserOrAdmin("userId"))
	carts.GET("/:id", cartHandler.Get, employee)
	carts.POST("", cartHandler.Create)
	carts.PUT("/:id", cartHandler.Update)
	carts.DELETE("/:id", cartHandler.Delete)

	// --- Order routes ---
	orders := e.Group("/orders", auth)
	orders.GET("", orderHandler.List, employee)
	orders.GET("/sales/month", orderHandler.MonthlySales, admin)
	orders.GET("/sales/total", orderHandler.TotalSales, admin)
	orders.GET("/user/:userId", orderHandler.GetByUser, middleware.RequireSameUserOrAdmin("userId"))
	orders.GET("/:id", orderHandler.Get, employee)
	orders.POST("", orderHandler.Create)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete, admin)

	// --- Payment routes ---
	e.POST("/pay", paymentHandler.Create, auth)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
