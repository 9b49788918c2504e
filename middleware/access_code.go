package middleware

import (
	"github.com/MercTechs/AttPortal/config"
	"github.com/MercTechs/AttPortal/internal/error/code"
	"github.com/MercTechs/AttPortal/internal/error/response"

	"github.com/gin-gonic/gin"
)

var accessCode string

// InitAuthMiddleware 初始化访问码中间件
func InitAuthMiddleware(cfg *config.Config) {
	accessCode = cfg.AccessCode
}

// RequireAccessCode 校验 X-Access-Code 请求头。
// 简单的字符串相等比较，与配置中的共享访问码一致即放行
func RequireAccessCode() gin.HandlerFunc {
	return func(c *gin.Context) {
		headerValue := c.GetHeader("X-Access-Code")

		if headerValue == "" {
			response.Fail(c, code.ErrAccessCodeRequired, nil)
			c.Abort()
			return
		}

		if headerValue != accessCode {
			response.Fail(c, code.ErrAccessCodeInvalid, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
