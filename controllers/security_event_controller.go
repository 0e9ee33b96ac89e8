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

// InterfaceSecurityEventController 定义安防事件控制器接口
type InterfaceSecurityEventController interface {
	GetSecurityEvents()
	GetSecurityEvent()
	CreateSecurityEvent()
}

// SecurityEventController 处理安防事件相关的请求
type SecurityEventController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSecurityEventController 创建一个新的安防事件控制器
func NewSecurityEventController(ctx *gin.Context, container *container.ServiceContainer) *SecurityEventController {
	return &SecurityEventController{
		Ctx:       ctx,
		Container: container,
	}
}

// SecurityEventRequest 表示创建安防事件的请求结构
type SecurityEventRequest struct {
	UserID      uint       `json:"user_id" binding:"required" example:"1"`
	EventType   string     `json:"event_type" binding:"required" example:"intrusion"` // intrusion, fire, gas_leak, water_leak, door_open, other
	Description string     `json:"description" binding:"required" example:"后门红外感应触发"`
	Location    string     `json:"location" example:"后门"`
	IsHandled   bool       `json:"is_handled" example:"false"`
	OccurredAt  *time.Time `json:"occurred_at" example:"2024-05-01T03:20:00Z"` // 缺省为创建时间
}

// HandleSecurityEventFunc 返回一个处理安防事件请求的Gin处理函数
func HandleSecurityEventFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSecurityEventController(ctx, container)

		switch method {
		case "getSecurityEvents":
			controller.GetSecurityEvents()
		case "getSecurityEvent":
			controller.GetSecurityEvent()
		case "createSecurityEvent":
			controller.CreateSecurityEvent()
		default:
			response.Fail(ctx, code.ErrBind, nil)
		}
	}
}

// 1 GetSecurityEvents 获取安防事件列表
// @Summary 获取安防事件列表
// @Description 分页获取所有安防事件
// @Tags security_event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skip query int false "偏移量"
// @Param limit query int false "数量上限"
// @Success 200 {array} models.SecurityEvent
// @Failure 500 {object} ErrorResponse
// @Router /security_events [get]
func (c *SecurityEventController) GetSecurityEvents() {
	securityEventService := c.Container.GetService("security_event").(services.InterfaceSecurityEventService)

	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	events, err := securityEventService.GetSecurityEvents(query)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取安防事件失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, events)
}

// 2 GetSecurityEvent 获取单个安防事件
// @Summary 获取单个安防事件
// @Description 根据ID获取安防事件
// @Tags security_event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "事件ID"
// @Success 200 {object} models.SecurityEvent
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /security_events/{id} [get]
func (c *SecurityEventController) GetSecurityEvent() {
	eventID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "无效的事件ID", nil)
		return
	}

	securityEventService := c.Container.GetService("security_event").(services.InterfaceSecurityEventService)
	event, err := securityEventService.GetSecurityEventByID(uint(eventID))
	if err != nil {
		response.Fail(c.Ctx, code.ErrSecurityEventNotFound, nil)
		return
	}

	response.Success(c.Ctx, event)
}

// 3 CreateSecurityEvent 创建安防事件
// @Summary 创建安防事件
// @Description 记录新的安防事件，发生时间缺省为当前时间
// @Tags security_event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body SecurityEventRequest true "安防事件"
// @Success 200 {object} models.SecurityEvent
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /security_events [post]
func (c *SecurityEventController) CreateSecurityEvent() {
	var req SecurityEventRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	event := &models.SecurityEvent{
		UserID:      req.UserID,
		EventType:   models.SecurityEventType(req.EventType),
		Description: req.Description,
		Location:    req.Location,
		IsHandled:   req.IsHandled,
	}
	if req.OccurredAt != nil {
		event.OccurredAt = *req.OccurredAt
	}

	securityEventService := c.Container.GetService("security_event").(services.InterfaceSecurityEventService)
	if err := securityEventService.CreateSecurityEvent(event); err != nil {
		switch err.Error() {
		case "无效的事件类型":
			response.Fail(c.Ctx, code.ErrSecurityEventTypeInvalid, nil)
		case "用户不存在":
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建安防事件失败: "+err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, event)
}
