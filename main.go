// @title           AttPortal API
// @version         1.0
// @description     考勤机平台与本地库之间的同步和查询服务
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey  AccessCode
// @in                          header
// @name                        X-Access-Code
// @description                 共享访问码
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MercTechs/AttPortal/config"
	"github.com/MercTechs/AttPortal/internal/infrastructure/database"
	"github.com/MercTechs/AttPortal/models"
	"github.com/MercTechs/AttPortal/routes"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 初始化日志配置
	if err := config.SetupLogger(); err != nil {
		fmt.Printf("初始化日志配置失败: %v\n", err)
		os.Exit(1)
	}

	// 加载.env文件
	if err := godotenv.Load(); err != nil {
		config.Warning("无法加载.env文件: %v", err)
		// 即使加载失败也继续执行，可能环境变量已经通过其他方式设置
	} else {
		config.Info("成功加载.env文件")
	}

	// 获取配置
	cfg := config.GetConfig()

	// 连接数据库
	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("无法连接数据库: %v", err)
	}
	db := pool.DB

	// 自动迁移，只添加新列和新表
	if err := autoMigrate(db); err != nil {
		log.Fatalf("自动迁移失败: %v", err)
	}

	// 初始化Redis客户端，连接不可用时容器会自动降级为不缓存
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	// 初始化路由
	r := routes.SetupRouter(db, cfg, redisClient)

	// 获取端口配置
	port := cfg.ServerPort
	if port == "" {
		port = "8080" // 默认端口
	}

	// 启动服务器
	config.Info("服务器启动在: http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		config.Error("启动服务器失败: %v", err)
		os.Exit(1)
	}
}

// autoMigrate 自动迁移所有模型
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.AttendanceDevice{},
		&models.AttendanceRecord{},
	)
}
