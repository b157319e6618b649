package controller

import (
	"net/http"
	"sysdesign_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthCheck godoc
// @Summary 健康检查
// @Description 检查服务与数据库状态
// @Tags 系统
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} util.MessageResponse "数据库不可用"
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.Message(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Message(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	ctx.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Message: "System Design Practice API is running",
	})
}
