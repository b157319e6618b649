package middleware

import (
	"strings"
	"sysdesign_backend/internal/config"
	"sysdesign_backend/internal/model"
	"sysdesign_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验 Bearer 令牌并把Claims放入请求上下文。
// 任何401都会触发前端的强制登出，这里不对失败原因做细分
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// AdminOnly 管理员专用接口的角色门槛
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if claims.Role != model.RoleAdmin {
			util.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
