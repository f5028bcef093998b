package provider

import (
	"fmt"
	"strings"
	"time"

	"github.com/tokri-shop/internal/config"
	"github.com/tokri-shop/internal/logger"
	"github.com/tokri-shop/internal/models"
	"github.com/tokri-shop/internal/repository"
	"github.com/tokri-shop/internal/service"
	"github.com/tokri-shop/internal/session"

	"github.com/redis/go-redis/v9"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	RedisClient *redis.Client

	// Session
	SessionStore session.Store
	TokenCodec   *session.TokenCodec

	// Repositories
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository

	// Services
	UserAuthService *service.UserAuthService
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	if cfg.Redis.Enabled {
		addr := strings.TrimSpace(cfg.Redis.Host)
		if addr == "" {
			addr = "127.0.0.1"
		}
		port := cfg.Redis.Port
		if port <= 0 {
			port = 6379
		}
		c.RedisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", addr, port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	// 1. 初始化会话存储
	c.initSession()

	// 2. 初始化 Repositories
	c.initRepositories()

	// 3. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initSession() {
	ttl := time.Duration(c.Config.Session.TTLHours) * time.Hour
	c.TokenCodec = session.NewTokenCodec(c.Config.Session.Secret, ttl)

	store := strings.ToLower(strings.TrimSpace(c.Config.Session.Store))
	if store == "redis" && c.RedisClient != nil {
		c.SessionStore = session.NewRedisStore(c.RedisClient, c.Config.Redis.Prefix, ttl)
		logger.Infow("session_store_initialized", "backend", "redis")
		return
	}
	if store == "redis" {
		logger.Warnw("session_store_redis_unavailable", "fallback", "memory")
	}
	c.SessionStore = session.NewMemoryStore(ttl)
	logger.Infow("session_store_initialized", "backend", "memory")
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.CatalogService = service.NewCatalogService(c.ProductRepo)
	c.CartService = service.NewCartService(c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(c.OrderRepo, c.ProductRepo)
}
