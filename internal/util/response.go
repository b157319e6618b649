package util

import (
	"net/http"
	"sysdesign_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageResponse 错误与提示的统一结构（前端依赖 message 字段）
type MessageResponse struct {
	Message string `json:"message"`
}

func Message(c *gin.Context, code int, message string) {
	c.JSON(code, MessageResponse{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Message(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context) {
	Message(c, http.StatusUnauthorized, "Not authorized")
}

func Forbidden(c *gin.Context) {
	Message(c, http.StatusForbidden, "Admin access required")
}

func NotFound(c *gin.Context, message string) {
	Message(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context, message string) {
	Message(c, http.StatusInternalServerError, message)
}

func LogInternalError(c *gin.Context, message string, err error) {
	logger.Log.Error(message, zap.Error(err), zap.String("path", c.FullPath()))
	InternalServerError(c, message)
}
