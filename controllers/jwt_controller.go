package controllers

import (
	"github.com/Sylviafong/smart-home-api/internal/error/code"
	"github.com/Sylviafong/smart-home-api/internal/error/response"
	"github.com/Sylviafong/smart-home-api/services"
	"github.com/Sylviafong/smart-home-api/services/container"

	"github.com/gin-gonic/gin"
)

// InterfaceJWTController 定义认证控制器接口
type InterfaceJWTController interface {
	Login()
}

// JWTController 处理认证相关的请求
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController 创建一个新的认证控制器
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 表示登录请求结构
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"zhangsan@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginResponse 表示登录响应结构
type LoginResponse struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// HandleJWTFunc 返回一个处理认证请求的Gin处理函数
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		default:
			response.Fail(ctx, code.ErrBind, nil)
		}
	}
}

// 1 Login 用户登录
// @Summary 用户登录
// @Description 使用邮箱和密码登录，返回JWT令牌
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "登录凭证"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailWithMessage(c.Ctx, code.ErrBind, "请求参数错误: "+err.Error(), nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.VerifyPassword(req.Email, req.Password)
	if err != nil {
		response.Fail(c.Ctx, code.ErrUserPasswordIncorrect, nil)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		response.FailWithMessage(c.Ctx, code.ErrUnknown, "生成令牌失败: "+err.Error(), nil)
		return
	}

	response.Success(c.Ctx, LoginResponse{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
	})
}
