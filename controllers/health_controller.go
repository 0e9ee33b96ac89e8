package controllers

import (
	"github.com/Sylviafong/smart-home-api/internal/error/response"
	"github.com/Sylviafong/smart-home-api/services"
	"github.com/Sylviafong/smart-home-api/services/container"

	"github.com/gin-gonic/gin"
)

// HandlePingFunc 返回健康检查处理函数
// @Summary 健康检查
// @Description 检查服务与Redis连接状态
// @Tags health
// @Produce json
// @Success 200 {object} response.Response
// @Router /ping [get]
func HandlePingFunc(container *container.ServiceContainer) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := gin.H{"status": "ok"}

		if redisService, ok := container.GetService("redis").(services.InterfaceRedisService); ok {
			if err := redisService.Ping(); err != nil {
				status["redis"] = "unavailable"
			} else {
				status["redis"] = "ok"
			}
		}

		response.Success(ctx, status)
	}
}
