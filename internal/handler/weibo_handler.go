package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Yuyu_Weibo/internal/service"

	"github.com/gin-gonic/gin"
)

type WeiboHandler struct {
	svc *service.WeiboService
}

type CreateWeiboReq struct {
	Content string `json:"content" binding:"required"`
	Media   string `json:"media"`
}

type DeleteWeiboReq struct {
	WeiboID uint64 `json:"weibo_id" binding:"required"`
}

func NewWeiboHandler() *WeiboHandler {
	return &WeiboHandler{
		svc: service.NewWeiboService(),
	}
}

// Create 发微博
func (h *WeiboHandler) Create(c *gin.Context) {
	userID := userIDFromCtx(c)
	if userID == 0 {
		fail(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req CreateWeiboReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.New("invalid input"))
		return
	}

	weiboID, err := h.svc.Create(c.Request.Context(), userID, req.Content, req.Media)
	if err != nil {
		fail(c, errStatus(err), err)
		return
	}

	ok(c, gin.H{"weibo_id": weiboID})
}

// List 公开的时间线，limit 可选
func (h *WeiboHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	list, err := h.svc.List(c.Request.Context(), limit)
	if err != nil {
		fail(c, errStatus(err), err)
		return
	}

	ok(c, gin.H{"weibos": list})
}

// Delete 只有作者能删；不存在和不是作者一律 404
func (h *WeiboHandler) Delete(c *gin.Context) {
	userID := userIDFromCtx(c)
	if userID == 0 {
		fail(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req DeleteWeiboReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.New("invalid input"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, req.WeiboID); err != nil {
		fail(c, errStatus(err), err)
		return
	}
	ok(c, nil)
}
