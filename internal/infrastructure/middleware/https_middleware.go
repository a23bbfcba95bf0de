package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"
)

// TlsHandler 生产环境下强制 HTTPS 跳转
func TlsHandler(host string, port int) gin.HandlerFunc {
	secureMiddleware := secure.New(secure.Options{
		SSLRedirect: true,
		SSLHost:     host + ":" + strconv.Itoa(port),
	})

	return func(c *gin.Context) {
		err := secureMiddleware.Process(c.Writer, c.Request)
		if err != nil {
			// 中间件里不能 Fatal，记日志并终止当前请求
			zap.L().Error("TLS redirection failed", zap.Error(err))
			c.Abort()
			return
		}
		c.Next()
	}
}
