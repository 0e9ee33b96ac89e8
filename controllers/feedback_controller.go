package controllers

import (
	"strconv"

	"github.com/Sylviafong/smart-home-api/internal/error/code"
	"github.com/Sylviafong/smart-home-api/internal/error/response"
	"github.com/Sylviafong/smart-home-api/models"
	"github.com/Sylviafong/smart-home-api/services"
	"github.com/Sylviafong/smart-home-api/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceFeedbackController 定义反馈控制器接口
type InterfaceFeedbackController interface {
	GetFeedbacks()
	GetFeedback()
	CreateFeedback()
}

// FeedbackController 处理用户反馈相关的请求
type FeedbackController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFeedbackController 创建一个新的反馈控制器
func NewFeedbackController(ctx *gin.Context, container *container.ServiceContainer) *FeedbackController {
	return &FeedbackController{
		Ctx:       ctx,
		Container: container,
	}
}

// FeedbackRequest 表示创建反馈的请求结构
type FeedbackRequest struct {
	UserID  uint   `json:"user_id" binding:"required" example:"1"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Title   string `json:"title" binding:"required" example:"灯光联动很好用"`
	Content string `json:"content" example:"回家自动开灯非常方便"`
}

// HandleFeedbackFunc 返回一个处理反馈请求的Gin处理函数
func HandleFeedbackFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFeedbackController(ctx, container)

		switch method {
		case "getFeedbacks":
			controller.GetFeedbacks()
		case "getFeedback":
			controller.GetFeedback()
		case "createFeedback":
			controller.CreateFeedback()
		default:
			response.Fail(ctx, code.ErrBind, nil)
		}
	}
}

// 1 GetFeedbacks 获取反馈列表
// @Summary 获取反馈列表
// @Description 分页获取所有用户反馈
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skip query int false "偏移量"
// @Param limit query int false "数量上限"
// @Success 200 {array} models.Feedback
// @Failure 500 {object} ErrorResponse
// @Router /feedbacks [get]
func (c *FeedbackController) GetFeedbacks() {
	feedbackService := c.Container.GetService("feedback").(services.InterfaceFeedbackService)

	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	feedbacks, err := feedbackService.GetFeedbacks(query)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取反馈失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, feedbacks)
}

// 2 GetFeedback 获取单条反馈
// @Summary 获取单条反馈
// @Description 根据ID获取反馈
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "反馈ID"
// @Success 200 {object} models.Feedback
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /feedbacks/{id} [get]
func (c *FeedbackController) GetFeedback() {
	feedbackID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "无效的反馈ID", nil)
		return
	}

	feedbackService := c.Container.GetService("feedback").(services.InterfaceFeedbackService)
	feedback, err := feedbackService.GetFeedbackByID(uint(feedbackID))
	if err != nil {
		response.Fail(c.Ctx, code.ErrFeedbackNotFound, nil)
		return
	}

	response.Success(c.Ctx, feedback)
}

// 3 CreateFeedback 创建反馈
// @Summary 创建反馈
// @Description 提交新的用户反馈，评分必须在1到5之间
// @Tags feedback
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feedback body FeedbackRequest true "反馈内容"
// @Success 200 {object} models.Feedback
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /feedbacks [post]
func (c *FeedbackController) CreateFeedback() {
	var req FeedbackRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	feedback := &models.Feedback{
		UserID:  req.UserID,
		Rating:  req.Rating,
		Title:   req.Title,
		Content: req.Content,
	}

	feedbackService := c.Container.GetService("feedback").(services.InterfaceFeedbackService)
	if err := feedbackService.CreateFeedback(feedback); err != nil {
		switch err.Error() {
		case "评分必须在1到5之间":
			response.Fail(c.Ctx, code.ErrFeedbackRatingInvalid, nil)
		case "用户不存在":
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
		default:
			response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建反馈失败: "+err.Error(), nil)
		}
		return
	}

	response.Success(c.Ctx, feedback)
}
