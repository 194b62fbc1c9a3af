package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Yuyu_Weibo/internal/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	svc *service.LikeService
}

type likeReq struct {
	WeiboID uint64 `json:"weibo_id" binding:"required"`
	Action  string `json:"action" binding:"omitempty,oneof=like unlike"`
}

func NewLikeHandler() *LikeHandler {
	return &LikeHandler{svc: service.NewLikeService()}
}

// Like action 缺省为 like。重复点赞按原行为 500 带消息返回。
func (h *LikeHandler) Like(c *gin.Context) {
	userID := userIDFromCtx(c)
	if userID == 0 {
		fail(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req likeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.New("invalid input"))
		return
	}
	if req.Action == "" {
		req.Action = "like"
	}

	if req.Action == "like" {
		likeID, err := h.svc.Like(c.Request.Context(), userID, req.WeiboID)
		if err != nil {
			fail(c, errStatus(err), err)
			return
		}
		ok(c, gin.H{"like_id": likeID})
		return
	}

	if err := h.svc.Unlike(c.Request.Context(), userID, req.WeiboID); err != nil {
		fail(c, errStatus(err), err)
		return
	}
	ok(c, nil)
}

// UserLikes 当前用户点过赞的微博 id 列表
func (h *LikeHandler) UserLikes(c *gin.Context) {
	userID := userIDFromCtx(c)
	if userID == 0 {
		fail(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	ids, err := h.svc.ListUserLikes(c.Request.Context(), userID)
	if err != nil {
		fail(c, errStatus(err), err)
		return
	}

	ok(c, gin.H{"weibo_ids": ids})
}

// Count 某条微博的点赞数，走缓存
func (h *LikeHandler) Count(c *gin.Context) {
	weiboID, _ := strconv.ParseUint(c.Query("weibo_id"), 10, 64)

	n, err := h.svc.Count(c.Request.Context(), weiboID)
	if err != nil {
		fail(c, errStatus(err), err)
		return
	}

	ok(c, gin.H{"weibo_id": weiboID, "like_count": n})
}

// State 当前用户是否赞过某条微博
func (h *LikeHandler) State(c *gin.Context) {
	userID := userIDFromCtx(c)
	if userID == 0 {
		fail(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}
	weiboID, _ := strconv.ParseUint(c.Query("weibo_id"), 10, 64)

	liked, err := h.svc.IsLiked(c.Request.Context(), userID, weiboID)
	if err != nil {
		fail(c, errStatus(err), err)
		return
	}

	ok(c, gin.H{"weibo_id": weiboID, "liked": liked})
}
