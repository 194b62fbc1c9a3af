package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Yuyu_Weibo/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

type CreateCommentReq struct {
	WeiboID  uint64 `json:"weibo_id" binding:"required"`
	Content  string `json:"content" binding:"required"`
	ParentID uint64 `json:"parent_id"`
}

type DeleteCommentReq struct {
	CommentID uint64 `json:"comment_id" binding:"required"`
}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{
		svc: service.NewCommentService(),
	}
}

// Create parent_id 可选，0 为一级评论
func (h *CommentHandler) Create(c *gin.Context) {
	userID := userIDFromCtx(c)
	if userID == 0 {
		fail(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.New("invalid input"))
		return
	}

	commentID, err := h.svc.Create(c.Request.Context(), userID, req.WeiboID, req.Content, req.ParentID)
	if err != nil {
		fail(c, errStatus(err), err)
		return
	}

	ok(c, gin.H{"comment_id": commentID})
}

// Delete 只有评论作者能删
func (h *CommentHandler) Delete(c *gin.Context) {
	userID := userIDFromCtx(c)
	if userID == 0 {
		fail(c, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req DeleteCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, errors.New("invalid input"))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, req.CommentID); err != nil {
		fail(c, errStatus(err), err)
		return
	}
	ok(c, nil)
}

// List 某条微博的评论，旧的在前
func (h *CommentHandler) List(c *gin.Context) {
	weiboID, _ := strconv.ParseUint(c.Query("weibo_id"), 10, 64)

	list, err := h.svc.ListByWeibo(c.Request.Context(), weiboID)
	if err != nil {
		fail(c, errStatus(err), err)
		return
	}

	ok(c, gin.H{"comments": list})
}
