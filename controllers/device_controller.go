package controllers

import (
	"strconv"

	"github.com/Sylviafong/smart-home-api/config"
	"github.com/Sylviafong/smart-home-api/internal/error/code"
	"github.com/Sylviafong/smart-home-api/internal/error/response"
	"github.com/Sylviafong/smart-home-api/models"
	"github.com/Sylviafong/smart-home-api/services"
	"github.com/Sylviafong/smart-home-api/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceDeviceController 定义设备控制器接口
type InterfaceDeviceController interface {
	GetDevices()
	GetDevice()
	CreateDevice()
	UpdateDevice()
	DeleteDevice()
}

// DeviceController 处理设备相关的请求
type DeviceController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDeviceController 创建一个新的设备控制器
func NewDeviceController(ctx *gin.Context, container *container.ServiceContainer) *DeviceController {
	return &DeviceController{
		Ctx:       ctx,
		Container: container,
	}
}

// DeviceRequest 表示设备请求结构
type DeviceRequest struct {
	Name         string `json:"name" binding:"required" example:"客厅灯"`
	DeviceType   string `json:"device_type" binding:"required" example:"light"` // light, air_conditioner, refrigerator, tv, security_camera, door_lock, speaker, other
	Model        string `json:"model" example:"Yeelight A60"`
	SerialNumber string `json:"serial_number" binding:"required" example:"SN2024050001"`
	Location     string `json:"location" example:"客厅"`
	Status       bool   `json:"status" example:"true"` // 开/关
	OwnerID      uint   `json:"owner_id" binding:"required" example:"1"`
}

// HandleDeviceFunc 返回一个处理设备请求的Gin处理函数
func HandleDeviceFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDeviceController(ctx, container)

		switch method {
		case "getDevices":
			controller.GetDevices()
		case "getDevice":
			controller.GetDevice()
		case "createDevice":
			controller.CreateDevice()
		case "updateDevice":
			controller.UpdateDevice()
		case "deleteDevice":
			controller.DeleteDevice()
		default:
			response.Fail(ctx, code.ErrBind, nil)
		}
	}
}

// 1 GetDevices 获取设备列表
// @Summary 获取设备列表
// @Description 分页获取所有设备
// @Tags device
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skip query int false "偏移量"
// @Param limit query int false "数量上限"
// @Success 200 {array} models.Device
// @Failure 500 {object} ErrorResponse
// @Router /devices [get]
func (c *DeviceController) GetDevices() {
	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)

	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	devices, err := deviceService.GetDevices(query)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取设备列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, devices)
}

// 2 GetDevice 获取单个设备详情
// @Summary 获取单个设备
// @Description 根据ID获取设备信息
// @Tags device
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "设备ID"
// @Success 200 {object} models.Device
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /devices/{id} [get]
func (c *DeviceController) GetDevice() {
	deviceID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "无效的设备ID", nil)
		return
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	device, err := deviceService.GetDeviceByID(uint(deviceID))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDeviceNotFound, nil)
		return
	}

	response.Success(c.Ctx, device)
}

// 3 CreateDevice 创建新设备
// @Summary 创建设备
// @Description 创建新设备，序列号必须唯一
// @Tags device
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param device body DeviceRequest true "设备信息"
// @Success 200 {object} models.Device
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /devices [post]
func (c *DeviceController) CreateDevice() {
	var req DeviceRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	device := &models.Device{
		Name:         req.Name,
		DeviceType:   models.DeviceType(req.DeviceType),
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		Location:     req.Location,
		Status:       req.Status,
		OwnerID:      req.OwnerID,
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	if err := deviceService.CreateDevice(device); err != nil {
		switch err.Error() {
		case "无效的设备类型":
			response.Fail(c.Ctx, code.ErrDeviceTypeInvalid, nil)
		case "设备序列号已存在":
			response.Fail(c.Ctx, code.ErrDeviceAlreadyExist, nil)
		case "设备所有者不存在":
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建设备失败: "+err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, device)
}

// 4 UpdateDevice 更新设备信息
// @Summary 更新设备
// @Description 根据ID更新设备信息
// @Tags device
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "设备ID"
// @Param updates body map[string]interface{} true "要更新的字段"
// @Success 200 {object} models.Device
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /devices/{id} [put]
func (c *DeviceController) UpdateDevice() {
	deviceID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "无效的设备ID", nil)
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	device, err := deviceService.UpdateDevice(uint(deviceID), updates)
	if err != nil {
		if err.Error() == "设备不存在" {
			response.Fail(c.Ctx, code.ErrDeviceNotFound, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrValidation, err.Error(), nil)
		return
	}

	// 状态变化时向MQTT推送设备状态通知，推送失败不影响更新结果
	if _, ok := updates["status"]; ok {
		if mqttService, ok := c.Container.GetService("mqtt").(services.InterfaceMQTTService); ok && mqttService != nil {
			if err := mqttService.PublishDeviceStatus(device); err != nil {
				config.Warning("设备状态推送失败: %v", err)
			}
		}
	}

	response.Success(c.Ctx, device)
}

// 5 DeleteDevice 删除设备
// @Summary 删除设备
// @Description 根据ID删除设备
// @Tags device
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "设备ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} ErrorResponse
// @Router /devices/{id} [delete]
func (c *DeviceController) DeleteDevice() {
	deviceID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "无效的设备ID", nil)
		return
	}

	deviceService := c.Container.GetService("device").(services.InterfaceDeviceService)
	if err := deviceService.DeleteDevice(uint(deviceID)); err != nil {
		response.Fail(c.Ctx, code.ErrDeviceNotFound, nil)
		return
	}

	response.Success(c.Ctx, nil)
}
