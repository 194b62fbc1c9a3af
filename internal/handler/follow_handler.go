package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Yuyu_Weibo/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	svc *service.FollowService
}

type followReq struct {
	FolloweeID uint64 `json:"followee_id" binding:"required"`
	Action     string `json:"action" binding:"omitempty,oneof=follow unfollow"`
}

func NewFollowHandler() *FollowHandler {
	return &FollowHandler{svc: service.NewFollowService()}
}

// Follow action 缺省为 follow。重复关注返回已有的 follow_id；
// 取关幂等，没关注过也返回成功。
func (h *FollowHandler) Follow(c *gin.Context) {
	userID := userIDFromCtx(c)
	if userID == 0 {
		fail(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req followReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.New("invalid input"))
		return
	}
	if req.Action == "" {
		req.Action = "follow"
	}

	if req.Action == "follow" {
		followID, err := h.svc.Follow(c.Request.Context(), userID, req.FolloweeID)
		if err != nil {
			fail(c, errStatus(err), err)
			return
		}
		ok(c, gin.H{"follow_id": followID})
		return
	}

	if err := h.svc.Unfollow(c.Request.Context(), userID, req.FolloweeID); err != nil {
		fail(c, errStatus(err), err)
		return
	}
	ok(c, nil)
}

// Followers 某用户的粉丝列表
func (h *FollowHandler) Followers(c *gin.Context) {
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)

	list, err := h.svc.ListFollowers(c.Request.Context(), userID)
	if err != nil {
		fail(c, errStatus(err), err)
		return
	}

	ok(c, gin.H{"users": list})
}

// Following 某用户关注的人
func (h *FollowHandler) Following(c *gin.Context) {
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 64)

	list, err := h.svc.ListFollowing(c.Request.Context(), userID)
	if err != nil {
		fail(c, errStatus(err), err)
		return
	}

	ok(c, gin.H{"users": list})
}
