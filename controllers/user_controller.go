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

// InterfaceUserController 定义用户控制器接口
type InterfaceUserController interface {
	GetUsers()
	GetUser()
	CreateUser()
}

// UserController 处理用户相关的请求
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController 创建一个新的用户控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// UserRequest 表示创建用户的请求结构
type UserRequest struct {
	Name      string   `json:"name" binding:"required" example:"张三"`
	Email     string   `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password  string   `json:"password" binding:"required,min=6" example:"secret123"`
	Phone     string   `json:"phone" example:"13800138000"`
	Address   string   `json:"address" example:"上海市浦东新区"`
	HouseArea *float64 `json:"house_area" example:"89.5"` // 房屋面积，平方米
}

// HandleUserFunc 返回一个处理用户请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "createUser":
			controller.CreateUser()
		default:
			response.Fail(ctx, code.ErrBind, nil)
		}
	}
}

// 1 GetUsers 获取用户列表
// @Summary 获取用户列表
// @Description 分页获取所有用户
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skip query int false "偏移量"
// @Param limit query int false "数量上限"
// @Success 200 {array} models.User
// @Failure 500 {object} ErrorResponse
// @Router /users [get]
func (c *UserController) GetUsers() {
	userService := c.Container.GetService("user").(services.InterfaceUserService)

	var query models.PaginationQuery
	if err := c.Ctx.ShouldBindQuery(&query); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	users, err := userService.GetUsers(query)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "获取用户列表失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, users)
}

// 2 GetUser 获取单个用户详情
// @Summary 获取单个用户
// @Description 根据ID获取用户信息
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetUser() {
	userID, err := strconv.Atoi(c.Ctx.Param("id"))
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrValidation, "无效的用户ID", nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(uint(userID))
	if err != nil {
		response.Fail(c.Ctx, code.ErrUserNotFound, nil)
		return
	}

	response.Success(c.Ctx, user)
}

// 3 CreateUser 注册新用户
// @Summary 注册用户
// @Description 创建新用户，邮箱必须唯一
// @Tags user
// @Accept json
// @Produce json
// @Param user body UserRequest true "用户信息"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func (c *UserController) CreateUser() {
	var req UserRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	user := &models.User{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		HouseArea: req.HouseArea,
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.CreateUser(user, req.Password); err != nil {
		if err.Error() == "邮箱已被注册" {
			response.Fail(c.Ctx, code.ErrUserAlreadyExist, nil)
			return
		}
		response.FailWithMessage(c.Ctx, code.ErrDatabase, "创建用户失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, user)
}
