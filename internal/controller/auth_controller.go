package controller

import (
	"errors"
	"net/http"
	"sysdesign_backend/internal/model"
	"sysdesign_backend/internal/service"
	"sysdesign_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse 注册/登录的响应：令牌加用户字段平铺
type AuthResponse struct {
	Token string         `json:"token"`
	ID    uint           `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
	Role  model.UserRole `json:"role"`
}

func authResponse(token string, user *model.User) AuthResponse {
	return AuthResponse{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

// Register godoc
// @Summary 注册新用户
// @Description 创建账号并直接返回JWT令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "用户注册信息"
// @Success 201 {object} AuthResponse "创建成功"
// @Failure 400 {object} util.MessageResponse "请求参数错误"
// @Failure 409 {object} util.MessageResponse "邮箱已被注册"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.RoleUser,
	}

	token, err := c.AuthService.Register(user)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Message(ctx, http.StatusConflict, "User already exists")
		} else {
			util.LogInternalError(ctx, "Error registering user", err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, authResponse(token, user))
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary 用户登录
// @Description 校验凭据并返回JWT令牌
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "用户登录凭据"
// @Success 200 {object} AuthResponse "成功"
// @Failure 400 {object} util.MessageResponse "请求参数错误"
// @Failure 401 {object} util.MessageResponse "凭据无效"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		// 不区分邮箱不存在与密码错误
		util.Message(ctx, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	ctx.JSON(http.StatusOK, authResponse(token, user))
}

// Me godoc
// @Summary 获取当前用户
// @Description 按令牌返回当前已认证用户
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.User "Success"
// @Failure 401 {object} util.MessageResponse "Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
