package controllers

import (
	"strconv"
	"time"

	"github.com/Sylviafong/smart-home-api/internal/error/code"
	"github.com/Sylviafong/smart-home-api/internal/error/response"
	"github.com/Sylviafong/smart-home-api/models"
	"github.com/Sylviafong/smart-home-api/services"
	"github.com/Sylviafong/smart-home-api/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceUsageRecordController 定义使用记录控制器接口
type InterfaceUsageRecordController interface {
	GetUsageRecords()
	GetUsageRecord()
	CreateUsageRecord()
}

// UsageRecordController 处理使用记录相关的请求
type UsageRecordController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUsageRecordController 创建一个新的使用记录控制器
func NewUsageRecordController(ctx *gin.Context, container *container.ServiceContainer) *UsageRecordController {
	return &UsageRecordController{
		Ctx:       ctx,
		Container: container,
	}
}

// UsageRecordRequest 表示创建使用记录的请求结构
type UsageRecordRequest struct {
	UserID           uint       `json:"user_id" binding:"required" example:"1"`
	DeviceID         uint       `json:"device_id" binding:"required" example:"1"`
	StartTime        time.Time  `json:"start_time" binding:"required" example:"2024-05-01T19:00:00Z"`
	EndTime          *time.Time `json:"end_time" example:"2024-05-01T19:30:00Z"`
	Duration         *float64   `json:"duration" example:"30"`          // 分钟，缺省时由起止时间推导
	PowerConsumption *float64   `json:"power_consumption" example:"0.6"` // kWh
}

// HandleUsageRecordFunc 返回一个处理使用记录请求的Gin处理函数
func HandleUsageRecordFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUsageRecordController(ctx, container)

		switch method {
		case "getUsageRecords":
			controller.GetUsageRecords()
		case "getUsageRecord":
			controller.GetUsageRecord()
		case "createUsageRecord":
			controller.CreateUsageRecord()
		default:
			response.Fail(ctx, code.ErrBind, nil)
		}
	}
}

// 1 GetUsageRecords 获取使用记录列表
// @Summary 获取使用记录列表
// @Description 分页获取所有设备使用记录
// @Tags usage_record
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skip query int false "偏移量"
// @Param limit query int false "数量上限"
// @Success 200 {array} models.UsageRecord
// @Failure 500 {object} ErrorResponse
// @Router /usage_records [get]
func (c *UsageRecordController) GetUsageRecords() {
	usageRecordService := c.Container.GetService("usage_record").(services.InterfaceUsageRecordService)

	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	records, err := usageRecordService.GetUsageRecords(query)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取使用记录失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, records)
}

// 2 GetUsageRecord 获取单条使用记录
// @Summary 获取单条使用记录
// @Description 根据ID获取使用记录
// @Tags usage_record
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} models.UsageRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /usage_records/{id} [get]
func (c *UsageRecordController) GetUsageRecord() {
	recordID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "无效的记录ID", nil)
		return
	}

	usageRecordService := c.Container.GetService("usage_record").(services.InterfaceUsageRecordService)
	record, err := usageRecordService.GetUsageRecordByID(uint(recordID))
	if err != nil {
		response.Fail(c.Ctx, code.ErrUsageRecordNotFound, nil)
		return
	}

	response.Success(c.Ctx, record)
}

// 3 CreateUsageRecord 创建使用记录
// @Summary 创建使用记录
// @Description 创建设备使用记录，未提供时长时由起止时间推导
// @Tags usage_record
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param record body UsageRecordRequest true "使用记录"
// @Success 200 {object} models.UsageRecord
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /usage_records [post]
func (c *UsageRecordController) CreateUsageRecord() {
	var req UsageRecordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	record := &models.UsageRecord{
		UserID:           req.UserID,
		DeviceID:         req.DeviceID,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Duration:         req.Duration,
		PowerConsumption: req.PowerConsumption,
	}

	usageRecordService := c.Container.GetService("usage_record").(services.InterfaceUsageRecordService)
	if err := usageRecordService.CreateUsageRecord(record); err != nil {
		switch err.Error() {
		case "用户不存在":
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
		case "设备不存在":
			response.Fail(c.Ctx, code.ErrDeviceNotFound, nil)
		case "结束时间早于开始时间", "使用时长不能为负":
			response.FailWithMessage(c.Ctx, code.ErrUsageRecordInvalid, err.Error(), nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建使用记录失败: "+err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, record)
}
