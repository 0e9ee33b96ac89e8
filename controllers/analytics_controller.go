package controllers

import (
	"errors"

	"github.com/Sylviafong/smart-home-api/internal/error/code"
	"github.com/Sylviafong/smart-home-api/internal/error/response"
	"github.com/Sylviafong/smart-home-api/services"
	"github.com/Sylviafong/smart-home-api/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceAnalyticsController 定义分析控制器接口
type InterfaceAnalyticsController interface {
	GetDeviceUsageFrequency()
	GetUserHabits()
	GetAreaImpact()
}

// AnalyticsController 处理使用分析相关的请求
type AnalyticsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAnalyticsController 创建一个新的分析控制器
func NewAnalyticsController(ctx *gin.Context, container *container.ServiceContainer) *AnalyticsController {
	return &AnalyticsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAnalyticsFunc 返回一个处理分析请求的Gin处理函数
func HandleAnalyticsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAnalyticsController(ctx, container)

		switch method {
		case "getDeviceUsageFrequency":
			controller.GetDeviceUsageFrequency()
		case "getUserHabits":
			controller.GetUserHabits()
		case "getAreaImpact":
			controller.GetAreaImpact()
		default:
			response.Fail(ctx, code.ErrBind, nil)
		}
	}
}

// failAnalytics 将分析层错误映射为统一错误码
func failAnalytics(ctx *gin.Context, err error) {
	var accessErr *services.DataAccessError
	var integrityErr *services.DataIntegrityError
	switch {
	case errors.As(err, &integrityErr):
		response.FailWithMessage(ctx, code.ErrDataIntegrity, err.Error(), nil)
	case errors.As(err, &accessErr):
		response.FailWithMessage(ctx, code.ErrDatabase, err.Error(), nil)
	default:
		response.FailWithMessage(ctx, code.ErrUnknown, err.Error(), nil)
	}
}

// 1 GetDeviceUsageFrequency 获取设备使用频率统计
// @Summary 获取设备使用频率统计
// @Description 统计每台有使用记录的设备的使用次数、总时长与平均时长
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.DeviceUsageFrequency
// @Failure 500 {object} ErrorResponse
// @Router /analytics/device_usage_frequency [get]
func (c *AnalyticsController) GetDeviceUsageFrequency() {
	analyticsService := c.Container.GetService("analytics").(services.InterfaceAnalyticsService)

	result, err := analyticsService.GetDeviceUsageFrequency()
	if err != nil {
		failAnalytics(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, result)
}

// 2 GetUserHabits 获取用户习惯画像
// @Summary 获取用户习惯画像
// @Description 统计每位用户的常用设备与使用时段
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.UserHabit
// @Failure 500 {object} ErrorResponse
// @Router /analytics/user_habits [get]
func (c *AnalyticsController) GetUserHabits() {
	analyticsService := c.Container.GetService("analytics").(services.InterfaceAnalyticsService)

	result, err := analyticsService.GetUserHabits()
	if err != nil {
		failAnalytics(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, result)
}

// 3 GetAreaImpact 获取住宅面积影响分析
// @Summary 获取住宅面积影响分析
// @Description 按住宅面积分组统计设备数量、使用时长与设备类型偏好
// @Tags analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.AreaImpact
// @Failure 500 {object} ErrorResponse
// @Router /analytics/area_impact [get]
func (c *AnalyticsController) GetAreaImpact() {
	analyticsService := c.Container.GetService("analytics").(services.InterfaceAnalyticsService)

	result, err := analyticsService.GetAreaImpact()
	if err != nil {
		failAnalytics(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, result)
}
