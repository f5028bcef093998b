package router

import (
	"fmt"
	"strings"

	"github.com/tokri-shop/internal/config"
	storehandlers "github.com/tokri-shop/internal/http/handlers/store"
	"github.com/tokri-shop/internal/logger"
	"github.com/tokri-shop/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	storeHandler := storehandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "tokri"
	}
	signinRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:signin", redisPrefix),
		WindowSeconds: cfg.Security.SigninRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.SigninRateLimit.MaxAttempts,
	}
	sessionMaxAge := cfg.Session.TTLHours * 3600

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(SessionMiddleware(c.SessionStore, c.TokenCodec, cfg.Session.CookieName, sessionMaxAge))

	// 商品浏览与表单（无需登录）
	r.GET("/", storeHandler.Home)
	r.GET("/product/:id", storeHandler.ProductDetail)
	r.GET("/signup", storeHandler.SignupForm)
	r.POST("/signup", storeHandler.Signup)
	r.GET("/signin", storeHandler.SigninForm)
	r.POST("/signin", RateLimitMiddleware(c.RedisClient, signinRule, KeyByIPAndJSONField("email")), storeHandler.Signin)
	r.GET("/logout", storeHandler.Logout)
	r.GET("/cart", storeHandler.GetCart)

	// 购物车与结算（需要登录）
	authed := r.Group("")
	authed.Use(AuthRequiredMiddleware())
	{
		authed.POST("/add_to_cart/:product_id", storeHandler.AddToCart)
		authed.POST("/buy_now/:product_id", storeHandler.BuyNow)
		authed.GET("/checkout", storeHandler.CheckoutForm)
		authed.POST("/checkout", storeHandler.Checkout)
		authed.GET("/orders", storeHandler.ListOrders)
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
