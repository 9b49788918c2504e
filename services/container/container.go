package container

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/MercTechs/AttPortal/config"
	"github.com/MercTechs/AttPortal/services"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	// 基础服务
	redisService  *services.RedisService
	vendorGateway services.InterfaceVendorGateway

	// 业务服务
	attendanceService services.InterfaceAttendanceService
	deviceService     services.InterfaceDeviceService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	// 测试Redis连接
	if redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Printf("Redis连接测试失败: %v，将不使用Redis缓存", err)
			redisClient = nil
		}
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化Redis服务，仅在连接可用时启用缓存
	if c.redis != nil {
		c.redisService = services.NewRedisService(c.redis)
	}

	// 初始化平台网关
	c.vendorGateway = services.NewVendorGatewayService(c.config)

	// 初始化业务服务
	c.attendanceService = services.NewAttendanceService(c.db, c.config, c.vendorGateway)
	c.deviceService = services.NewDeviceService(c.db, c.config, c.vendorGateway, c.redisService)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "redis":
		return c.redisService
	case "vendor_gateway":
		return c.vendorGateway
	case "attendance":
		return c.attendanceService
	case "device":
		return c.deviceService
	default:
		return nil
	}
}
