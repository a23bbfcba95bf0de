// Package handler 提供 HTTP 请求处理器
// 本文件处理认证相关的 API 请求
package handler

import (
	"net/http"

	"quanzi_server/internal/dto/request"
	"quanzi_server/internal/service"
	"quanzi_server/pkg/constants"
	"quanzi_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// refreshCookieName refresh token 存放的 http-only cookie 名
const refreshCookieName = "refresh_token"

// AuthHandler 认证相关 Handler
type AuthHandler struct {
	userSvc service.UserService
}

// NewAuthHandler 创建 AuthHandler 实例
func NewAuthHandler(userSvc service.UserService) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

// setRefreshCookie refresh token 写入 http-only cookie，不出现在响应体
func setRefreshCookie(c *gin.Context, token string) {
	maxAge := int(constants.REFRESH_TOKEN_EXPIRY_HOURS) * 3600
	if token == "" {
		maxAge = -1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookieName, token, maxAge, "/api/v1/auth", "", false, true)
}

// SendOtp 发送邮箱验证码
// POST /auth/otp/send
func (h *AuthHandler) SendOtp(c *gin.Context) {
	var req request.SendOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.SendOtp(req.Email); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// VerifyOtp 校验邮箱验证码
// POST /auth/otp/verify
func (h *AuthHandler) VerifyOtp(c *gin.Context) {
	var req request.VerifyOtpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.userSvc.VerifyOtp(req.Email, req.Code); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// Register 邮箱注册
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.userSvc.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleCreated(c, rsp)
}

// Login 密码登录
// POST /auth/login
// access token 在响应体，refresh token 写 http-only cookie
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	rsp, err := h.userSvc.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	setRefreshCookie(c, rsp.RefreshToken)
	HandleSuccess(c, rsp)
}

// Refresh 刷新令牌对
// POST /auth/refresh
// refresh token 从 cookie 读取，刷新成功后轮换 cookie
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		HandleError(c, errorx.New(errorx.CodeUnauthorized, "缺少 refresh token"))
		return
	}
	rsp, err := h.userSvc.Refresh(refreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	setRefreshCookie(c, rsp.RefreshToken)
	HandleSuccess(c, rsp)
}

// Logout 注销
// POST /auth/logout （需要登录）
func (h *AuthHandler) Logout(c *gin.Context) {
	userId, ok := currentUserId(c)
	if !ok {
		return
	}
	if err := h.userSvc.Logout(userId); err != nil {
		HandleError(c, err)
		return
	}
	setRefreshCookie(c, "")
	HandleSuccess(c, nil)
}
