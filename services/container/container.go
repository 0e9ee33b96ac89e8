package container

import (
	"sync"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/services"

	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService
	mqttService  services.InterfaceMQTTService

	// 业务服务
	userService          services.InterfaceUserService
	deviceService        services.InterfaceDeviceService
	usageRecordService   services.InterfaceUsageRecordService
	securityEventService services.InterfaceSecurityEventService
	feedbackService      services.InterfaceFeedbackService

	// 分析与可视化服务
	analyticsService     services.InterfaceAnalyticsService
	visualizationService services.InterfaceVisualizationService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}

	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config)
	c.redisService = services.NewRedisService(c.config)

	// MQTT报警推送为可选项，未配置代理时不启用
	if c.config.MQTTBrokerURL != "" {
		c.mqttService = services.NewMQTTService(c.config)
		if err := c.mqttService.Connect(); err != nil {
			config.Warning("MQTT服务连接失败: %v", err)
		}
	}

	// 初始化业务服务
	c.userService = services.NewUserService(c.db, c.config)
	c.deviceService = services.NewDeviceService(c.db, c.config)
	c.usageRecordService = services.NewUsageRecordService(c.db, c.config)
	c.securityEventService = services.NewSecurityEventService(c.db, c.config, c.mqttService)
	c.feedbackService = services.NewFeedbackService(c.db, c.config)

	// 初始化分析与可视化服务
	c.analyticsService = services.NewAnalyticsService(c.db, c.config)
	c.visualizationService = services.NewVisualizationService(c.db, c.config)
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
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "mqtt":
		return c.mqttService
	case "user":
		return c.userService
	case "device":
		return c.deviceService
	case "usage_record":
		return c.usageRecordService
	case "security_event":
		return c.securityEventService
	case "feedback":
		return c.feedbackService
	case "analytics":
		return c.analyticsService
	case "visualization":
		return c.visualizationService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
