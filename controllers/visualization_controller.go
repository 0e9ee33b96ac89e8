package controllers

import (
	"time"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/internal/error/code"
	"github.com/Sylviafong/smart-home-api/internal/error/response"
	"github.com/Sylviafong/smart-home-api/services"
	"github.com/Sylviafong/smart-home-api/services/container"

	"github.com/gin-gonic/gin"
)

// 报表的Redis缓存时长
const reportCacheExpiration = 5 * time.Minute

// InterfaceVisualizationController 定义可视化控制器接口
type InterfaceVisualizationController interface {
	GetDeviceUsageReport()
	GetSecurityEventsReport()
	GetFeedbackReport()
}

// VisualizationController 处理可视化报表相关的请求
type VisualizationController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewVisualizationController 创建一个新的可视化控制器
func NewVisualizationController(ctx *gin.Context, container *container.ServiceContainer) *VisualizationController {
	return &VisualizationController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleVisualizationFunc 返回一个处理可视化请求的Gin处理函数
func HandleVisualizationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewVisualizationController(ctx, container)

		switch method {
		case "getDeviceUsageReport":
			controller.GetDeviceUsageReport()
		case "getSecurityEventsReport":
			controller.GetSecurityEventsReport()
		case "getFeedbackReport":
			controller.GetFeedbackReport()
		default:
			response.Fail(ctx, code.ErrBind, nil)
		}
	}
}

// serveReport 先查Redis缓存，未命中时生成报表并回写缓存
func (c *VisualizationController) serveReport(name string, build func() (*services.ChartReport, error)) {
	redisService, _ := c.Container.GetService("redis").(services.InterfaceRedisService)

	if redisService != nil {
		var cached services.ChartReport
		if err := redisService.GetReport(name, &cached); err == nil {
			response.Success(c.Ctx, &cached)
			return
		}
	}

	report, err := build()
	if err != nil {
		failAnalytics(c.Ctx, err)
		return
	}

	if redisService != nil {
		if err := redisService.CacheReport(name, report, reportCacheExpiration); err != nil {
			config.Warning("报表缓存写入失败: %v", err)
		}
	}

	response.Success(c.Ctx, report)
}

// 1 GetDeviceUsageReport 获取设备使用报表
// @Summary 获取设备使用报表
// @Description 按设备类型统计使用次数与使用时长，返回图表数据
// @Tags visualization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.ChartReport
// @Failure 500 {object} ErrorResponse
// @Router /visualization/device_usage [get]
func (c *VisualizationController) GetDeviceUsageReport() {
	visualizationService := c.Container.GetService("visualization").(services.InterfaceVisualizationService)
	c.serveReport("device_usage", visualizationService.GetDeviceUsageReport)
}

// 2 GetSecurityEventsReport 获取安防事件报表
// @Summary 获取安防事件报表
// @Description 统计最近180天各类型安防事件数量与月度趋势，返回图表数据
// @Tags visualization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.ChartReport
// @Failure 500 {object} ErrorResponse
// @Router /visualization/security_events [get]
func (c *VisualizationController) GetSecurityEventsReport() {
	visualizationService := c.Container.GetService("visualization").(services.InterfaceVisualizationService)
	c.serveReport("security_events", visualizationService.GetSecurityEventsReport)
}

// 3 GetFeedbackReport 获取反馈报表
// @Summary 获取反馈报表
// @Description 统计评分分布、月度反馈数量与月度平均评分，返回图表数据
// @Tags visualization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} services.ChartReport
// @Failure 500 {object} ErrorResponse
// @Router /visualization/user_feedback [get]
func (c *VisualizationController) GetFeedbackReport() {
	visualizationService := c.Container.GetService("visualization").(services.InterfaceVisualizationService)
	c.serveReport("feedback", visualizationService.GetFeedbackReport)
}
