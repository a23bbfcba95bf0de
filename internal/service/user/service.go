// Package user 实现用户系统的核心服务层
// service.go
// 核心职责：注册、登录、令牌刷新与邮箱验证码
// 1. 注册必须携带有效邮箱验证码，验证通过即消费
// 2. refresh token 采用单会话策略：Redis 只保留最新 tokenID，旧 token 作废
package user

import (
	"context"
	"time"

	"quanzi_server/internal/dao/mysql/repository"
	myredis "quanzi_server/internal/dao/redis"
	"quanzi_server/internal/dto/request"
	"quanzi_server/internal/dto/respond"
	"quanzi_server/internal/infrastructure/email"
	"quanzi_server/internal/model"
	"quanzi_server/pkg/constants"
	"quanzi_server/pkg/errorx"
	myjwt "quanzi_server/pkg/util/jwt"
	"quanzi_server/pkg/util/random"

	"go.uber.org/zap"
)

type userService struct {
	repos    *repository.Repositories
	cache    myredis.AsyncCacheService
	emailSvc email.EmailService
}

// NewUserService 创建用户服务实例
func NewUserService(repos *repository.Repositories, cacheService myredis.AsyncCacheService, emailSvc email.EmailService) *userService {
	return &userService{
		repos:    repos,
		cache:    cacheService,
		emailSvc: emailSvc,
	}
}

// refreshTokenKey 当前有效 refresh tokenID 的存储键
func refreshTokenKey(userId string) string {
	return "refresh_token_" + userId
}

// SendOtp 发送邮箱验证码，冷却期内重复请求返回 CodeRateLimit
func (u *userService) SendOtp(email string) error {
	return u.emailSvc.SendVerificationCode(email)
}

// VerifyOtp 校验邮箱验证码，成功即消费
func (u *userService) VerifyOtp(email, code string) error {
	return u.emailSvc.VerifyCode(email, code)
}

// Register 邮箱注册
// 先消费验证码，再落库；邮箱已占用返回 409
func (u *userService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if err := u.emailSvc.VerifyCode(req.Email, req.OtpCode); err != nil {
		return nil, err
	}

	user := &model.UserInfo{
		Uuid:          random.GetEntityUuid("U"),
		Nickname:      req.Nickname,
		Email:         req.Email,
		EmailVerified: 1,
		RawPassword:   req.Password,
	}
	if err := u.repos.User.Create(user); err != nil {
		if errorx.GetCode(err) == errorx.CodeConflict {
			return nil, errorx.New(errorx.CodeConflict, "邮箱已注册")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	return &respond.RegisterRespond{
		Uuid:      user.Uuid,
		Nickname:  user.Nickname,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}, nil
}

// issueTokens 签发令牌对并登记 refresh tokenID（覆盖旧会话）
func (u *userService) issueTokens(user *model.UserInfo) (*respond.LoginRespond, error) {
	accessToken, err := myjwt.GenerateAccessToken(user.Uuid)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := myjwt.GenerateRefreshToken(user.Uuid)
	if err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	// 同步写入，登记失败则登录失败，避免发出无法刷新的令牌
	ttl := time.Hour * constants.REFRESH_TOKEN_EXPIRY_HOURS
	if err := u.cache.Set(context.Background(), refreshTokenKey(user.Uuid), tokenID, ttl); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.Wrap(err, errorx.CodeCacheError, "登录状态写入失败")
	}

	return &respond.LoginRespond{
		Uuid:         user.Uuid,
		Nickname:     user.Nickname,
		Email:        user.Email,
		Avatar:       user.Avatar,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login 密码登录
// 邮箱不存在与密码错误统一返回 401，不暴露账号是否存在
func (u *userService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := u.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "邮箱或密码错误")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if user.Status != 0 {
		return nil, errorx.New(errorx.CodeForbidden, "账号已被禁用")
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeUnauthorized, "邮箱或密码错误")
	}

	return u.issueTokens(user)
}

// Refresh 用 refresh token 换新令牌对
// tokenID 必须与 Redis 登记的一致（单会话），刷新后旧 refresh token 作废
func (u *userService) Refresh(refreshToken string) (*respond.LoginRespond, error) {
	claims, err := myjwt.ParseToken(refreshToken)
	if err != nil {
		return nil, errorx.New(errorx.CodeUnauthorized, "refresh token 无效")
	}
	if claims.Subject != "refresh_token" || claims.TokenID == "" {
		return nil, errorx.New(errorx.CodeUnauthorized, "refresh token 无效")
	}

	storedID, err := u.cache.GetOrError(context.Background(), refreshTokenKey(claims.UserID))
	if err != nil || storedID != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "登录已失效，请重新登录")
	}

	user, err := u.repos.User.FindByUuid(claims.UserID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUnauthorized, "用户不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if user.Status != 0 {
		return nil, errorx.New(errorx.CodeForbidden, "账号已被禁用")
	}

	return u.issueTokens(user)
}

// Logout 注销，作废当前 refresh token
func (u *userService) Logout(userId string) error {
	if err := u.cache.Delete(context.Background(), refreshTokenKey(userId)); err != nil {
		zap.L().Error(err.Error())
		return errorx.Wrap(err, errorx.CodeCacheError, "注销失败")
	}
	return nil
}
