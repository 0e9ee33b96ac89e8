package routes

import (
	"time"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/controllers"
	_ "github.com/Sylviafong/smart-home-api/docs"
	"github.com/Sylviafong/smart-home-api/middleware"
	"github.com/Sylviafong/smart-home-api/services/container"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// 分析与报表接口的本地缓存时长
const analyticsCacheExpiration = 2 * time.Minute

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
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
	serviceContainer := container.NewServiceContainer(db, cfg)
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
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查
	api.GET("/ping", controllers.HandlePingFunc(container))

	// 认证路由
	api.POST("/auth/login", controllers.HandleJWTFunc(container, "login"))
	// 用户注册
	api.POST("/users", controllers.HandleUserFunc(container, "createUser"))
}

// registerAuthenticatedRoutes 注册需要认证的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 添加认证中间件
	auth := api.Group("/")
	auth.Use(middleware.Authentication())

	// 用户路由
	auth.Group("/users").GET("", controllers.HandleUserFunc(container, "getUsers"))
	auth.Group("/users").GET("/:id", controllers.HandleUserFunc(container, "getUser"))

	// 设备路由
	auth.Group("/devices").GET("", controllers.HandleDeviceFunc(container, "getDevices"))
	auth.Group("/devices").GET("/:id", controllers.HandleDeviceFunc(container, "getDevice"))
	auth.Group("/devices").POST("", controllers.HandleDeviceFunc(container, "createDevice"))
	auth.Group("/devices").PUT("/:id", controllers.HandleDeviceFunc(container, "updateDevice"))
	auth.Group("/devices").DELETE("/:id", controllers.HandleDeviceFunc(container, "deleteDevice"))

	// 使用记录路由
	auth.Group("/usage_records").GET("", controllers.HandleUsageRecordFunc(container, "getUsageRecords"))
	auth.Group("/usage_records").GET("/:id", controllers.HandleUsageRecordFunc(container, "getUsageRecord"))
	auth.Group("/usage_records").POST("", controllers.HandleUsageRecordFunc(container, "createUsageRecord"))

	// 安防事件路由
	auth.Group("/security_events").GET("", controllers.HandleSecurityEventFunc(container, "getSecurityEvents"))
	auth.Group("/security_events").GET("/:id", controllers.HandleSecurityEventFunc(container, "getSecurityEvent"))
	auth.Group("/security_events").POST("", controllers.HandleSecurityEventFunc(container, "createSecurityEvent"))

	// 反馈路由
	auth.Group("/feedbacks").GET("", controllers.HandleFeedbackFunc(container, "getFeedbacks"))
	auth.Group("/feedbacks").GET("/:id", controllers.HandleFeedbackFunc(container, "getFeedback"))
	auth.Group("/feedbacks").POST("", controllers.HandleFeedbackFunc(container, "createFeedback"))

	// 分析路由，读多写少，加本地缓存与限流
	analytics := auth.Group("/analytics")
	analytics.Use(middleware.IPRateLimiter(5, 10))
	analytics.Use(middleware.Cache(analyticsCacheExpiration))
	analytics.GET("/device_usage_frequency", controllers.HandleAnalyticsFunc(container, "getDeviceUsageFrequency"))
	analytics.GET("/user_habits", controllers.HandleAnalyticsFunc(container, "getUserHabits"))
	analytics.GET("/area_impact", controllers.HandleAnalyticsFunc(container, "getAreaImpact"))

	// 可视化报表路由
	visualization := auth.Group("/visualization")
	visualization.Use(middleware.IPRateLimiter(5, 10))
	visualization.GET("/device_usage", controllers.HandleVisualizationFunc(container, "getDeviceUsageReport"))
	visualization.GET("/security_events", controllers.HandleVisualizationFunc(container, "getSecurityEventsReport"))
	visualization.GET("/user_feedback", controllers.HandleVisualizationFunc(container, "getFeedbackReport"))
}
