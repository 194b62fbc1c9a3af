package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Yuyu_Weibo/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

type RegisterReq struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileReq struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

func NewUserHandler() *UserHandler {
	return &UserHandler{
		svc: service.NewUserService(),
	}
}

// Register 注册即登录，返回 user_id 和一对 token
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.New("invalid input"))
		return
	}

	userID, pair, err := h.svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		fail(c, errStatus(err), err)
		return
	}

	ok(c, gin.H{"user_id": userID, "access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

// Login 认证失败一律 401，不泄露邮箱是否已注册
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.New("invalid input"))
		return
	}

	userID, pair, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	ok(c, gin.H{"user_id": userID, "access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

func (h *UserHandler) Logout(c *gin.Context) {
	userID := userIDFromCtx(c)
	if userID == 0 {
		fail(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	if err := h.svc.Logout(c.Request.Context(), userID); err != nil {
		fail(c, http.StatusInternalServerError, errors.New("logout failed"))
		return
	}
	ok(c, nil)
}

// TokenRefresh 用 refresh token 换新的一对
func (h *UserHandler) TokenRefresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.New("invalid input"))
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		fail(c, http.StatusUnauthorized, err)
		return
	}

	ok(c, gin.H{"access_token": pair.AccessToken, "refresh_token": pair.RefreshToken})
}

// UpdateProfile 修改用户名/头像，两者至少传一个
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := userIDFromCtx(c)
	if userID == 0 {
		fail(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.New("invalid input"))
		return
	}

	if err := h.svc.UpdateProfile(c.Request.Context(), userID, req.Username, req.Avatar); err != nil {
		fail(c, errStatus(err), err)
		return
	}
	ok(c, nil)
}

// GetInfo 公开的用户信息
func (h *UserHandler) GetInfo(c *gin.Context) {
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)

	info, err := h.svc.GetInfo(c.Request.Context(), userID)
	if err != nil {
		fail(c, errStatus(err), err)
		return
	}

	ok(c, gin.H{"data": info})
}
