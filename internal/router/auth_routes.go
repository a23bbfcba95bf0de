// Package router 提供 HTTP 路由注册
// 本文件定义认证相关的路由
package router

import (
	"quanzi_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes 注册认证相关路由
// 除 logout 外均无需登录
func (rt *Router) RegisterAuthRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/otp/send", rt.handlers.Auth.SendOtp)     // 发送邮箱验证码
		authGroup.POST("/otp/verify", rt.handlers.Auth.VerifyOtp) // 校验邮箱验证码
		authGroup.POST("/register", rt.handlers.Auth.Register)    // 邮箱注册
		authGroup.POST("/login", rt.handlers.Auth.Login)          // 密码登录
		authGroup.POST("/refresh", rt.handlers.Auth.Refresh)      // 刷新令牌对（cookie）

		authGroup.POST("/logout", middleware.JWTAuth(), rt.handlers.Auth.Logout) // 注销
	}
}
