package container

import (
	"github.com/provider-next/internal/cache"
	"github.com/provider-next/internal/config"
	"github.com/provider-next/internal/logger"
	"github.com/provider-next/internal/models"
	"github.com/provider-next/internal/queue"
	"github.com/provider-next/internal/repository"
	"github.com/provider-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo       repository.AdminRepository
	ProviderRepo    repository.ProviderRepository
	OrderRepo       repository.OrderRepository
	ProductRepo     repository.ProductRepository
	AssignmentRepo  repository.ProductProviderRepository
	FulfillmentRepo repository.FulfillmentRepository

	// Services
	AuthService        *service.AuthService
	ProviderService    *service.ProviderService
	AssignmentService  *service.AssignmentService
	FulfillmentService *service.FulfillmentService
	InventoryService   *service.InventoryService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("container_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("container_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ProviderRepo = repository.NewProviderRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.AssignmentRepo = repository.NewProductProviderRepository(db)
	c.FulfillmentRepo = repository.NewFulfillmentRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.ProviderService = service.NewProviderService(c.ProviderRepo)
	c.AssignmentService = service.NewAssignmentService(c.AssignmentRepo, c.ProductRepo, c.ProviderRepo)
	c.FulfillmentService = service.NewFulfillmentService(c.OrderRepo, c.ProviderRepo, c.FulfillmentRepo, c.QueueClient)
	c.InventoryService = service.NewInventoryService(c.ProductRepo, c.AssignmentRepo, c.QueueClient)
}

// Close 释放容器资源
func (c *Container) Close() {
	if c.QueueClient != nil {
		if err := c.QueueClient.Close(); err != nil {
			logger.Warnw("container_close_queue_client_failed", "error", err)
		}
	}
}
