package main

import (
	"log/slog"
	"net/http"
	"os"

	"food-ordering-web/actions"
	"food-ordering-web/cache"
	"food-ordering-web/config"
	"food-ordering-web/gateway"
	"food-ordering-web/handlers"
	"food-ordering-web/middleware"
	"food-ordering-web/routes"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Tag cache: Redis when configured, in-process otherwise
	var store cache.Store
	if cfg.RedisAddr != "" {
		store = cache.NewRedis(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		logger.Info("using redis tag cache", "addr", cfg.RedisAddr)
	} else {
		store = cache.NewMemory()
		logger.Info("using in-memory tag cache")
	}
	tagCache := cache.New(store, cache.DefaultTTL, logger)

	// Gateway clients against the backend-of-record and the auth provider
	backend := gateway.NewClient(cfg.BackendURL, nil, tagCache)
	authSvc := gateway.NewClient(cfg.AuthURL, nil, nil)

	publicSvc := gateway.NewPublic(backend)
	userSvc := gateway.NewUser(authSvc)
	customerSvc := gateway.NewCustomer(backend)
	providerSvc := gateway.NewProvider(backend)
	adminSvc := gateway.NewAdmin(backend)

	deps := routes.Deps{
		Public:   handlers.NewPublic(publicSvc),
		Customer: handlers.NewCustomer(customerSvc, actions.NewCustomer(customerSvc, tagCache)),
		Provider: handlers.NewProvider(providerSvc, actions.NewProvider(providerSvc, tagCache)),
		Admin:    handlers.NewAdmin(adminSvc, publicSvc, actions.NewAdmin(adminSvc, tagCache)),
		Gate:     middleware.NewGate(userSvc, cfg.GateTokenSecret, cfg.GateTokenTTL),
		Limiter:  middleware.NewRateLimiter(20, 40),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	// CORS headers for the browser-side proxy against PUBLIC_BACKEND_URL
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", cfg.FrontendURL)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Ordering Web",
			"backend": cfg.PublicBackendURL,
		})
	})

	routes.SetupRoutes(r, deps)

	logger.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
