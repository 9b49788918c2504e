package routes

import (
	"github.com/MercTechs/AttPortal/config"
	"github.com/MercTechs/AttPortal/controllers"
	_ "github.com/MercTechs/AttPortal/docs"
	"github.com/MercTechs/AttPortal/middleware"
	"github.com/MercTechs/AttPortal/services/container"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由，redisClient 可为nil表示不启用缓存
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Requested-With, X-Access-Code")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
) {
	// API 路由根路径
	api := r.Group("/api")
	// 注册公共路由
	registerPublicRoutes(api)
	// 注册需要访问码的路由
	registerProtectedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(api *gin.RouterGroup) {
	// 健康检查
	healthController := controllers.NewHealthCheckController()
	api.GET("/ping", healthController.Ping)
}

// registerProtectedRoutes 注册需要访问码的路由
func registerProtectedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加访问码中间件
	protected := api.Group("/")
	protected.Use(middleware.RequireAccessCode())

	// 同步类接口会触发对平台的出站调用，加上限流
	syncLimiter := middleware.RateLimitByIP(5, 10)

	// 考勤路由
	protected.GET("/attendance/sync", syncLimiter, controllers.HandleAttendanceFunc(container, "syncAttendance"))
	protected.GET("/attendance", controllers.HandleAttendanceFunc(container, "getAttendanceRecords"))

	// 设备路由
	protected.GET("/devices", syncLimiter, controllers.HandleDeviceFunc(container, "getDevices"))
	protected.GET("/devices/:serial_number/employees", controllers.HandleDeviceFunc(container, "getDeviceEmployees"))
	protected.PATCH("/devices/:serial_number/type", controllers.HandleDeviceFunc(container, "updateDeviceType"))
	protected.POST("/devices/:serial_number/update-attendance-status", controllers.HandleDeviceFunc(container, "updateAttendanceStatus"))
}
