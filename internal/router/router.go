package router

import (
	"fmt"
	"strings"

	"github.com/provider-next/internal/cache"
	"github.com/provider-next/internal/config"
	"github.com/provider-next/internal/container"
	adminhandlers "github.com/provider-next/internal/http/handlers/admin"
	publichandlers "github.com/provider-next/internal/http/handlers/public"
	"github.com/provider-next/internal/logger"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *container.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "pn"
	}
	redisClient := cache.Client()
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/providers", publicHandler.GetActiveProviders)
			public.GET("/products/:slug/availability", publicHandler.GetProductAvailability)
			public.GET("/orders/by-order-no/:order_no/fulfillments", publicHandler.GetOrderFulfillments)
		}

		// 管理端登录
		apiV1.POST("/admin/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("username")), adminHandler.AdminLogin)

		// 管理端接口（需鉴权）
		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
		{
			admin.GET("/profile", adminHandler.GetAdminProfile)

			admin.GET("/providers", adminHandler.GetAdminProviders)
			admin.POST("/providers", adminHandler.CreateProvider)
			admin.GET("/providers/:id", adminHandler.GetAdminProvider)
			admin.PUT("/providers/:id", adminHandler.UpdateProvider)
			admin.DELETE("/providers/:id", adminHandler.DeleteProvider)
			admin.PUT("/providers/:id/active", adminHandler.SetProviderActive)

			admin.GET("/product-providers", adminHandler.GetAdminAssignments)
			admin.POST("/product-providers", adminHandler.CreateAssignment)
			admin.GET("/product-providers/:id", adminHandler.GetAdminAssignment)
			admin.PUT("/product-providers/:id", adminHandler.UpdateAssignment)
			admin.DELETE("/product-providers/:id", adminHandler.DeleteAssignment)

			admin.GET("/orders/:id", adminHandler.GetAdminOrder)
			admin.POST("/orders/:id/split", adminHandler.SplitOrder)
			admin.GET("/orders/:id/split-summary", adminHandler.GetOrderSplitSummary)
			admin.GET("/orders/:id/fulfillments", adminHandler.GetOrderFulfillments)

			admin.GET("/fulfillments", adminHandler.GetAdminFulfillments)
			admin.GET("/fulfillments/:id", adminHandler.GetAdminFulfillment)
			admin.POST("/fulfillments/:id/ship", adminHandler.ShipFulfillment)
			admin.POST("/fulfillments/:id/complete", adminHandler.CompleteFulfillment)
			admin.POST("/fulfillments/:id/cancel", adminHandler.CancelFulfillment)
			admin.PUT("/fulfillments/:id/tracking", adminHandler.UpdateFulfillmentTracking)
			admin.PUT("/fulfillments/:id/items", adminHandler.UpdateFulfillmentItems)
			admin.DELETE("/fulfillments/:id", adminHandler.DeleteFulfillment)

			admin.GET("/products/:id/availability", adminHandler.GetProductAvailability)
			admin.PUT("/products/:id/availability", adminHandler.UpdateProductAvailability)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
