package handler

import (
	"errors"
	"net/http"

	"Yuyu_Weibo/internal/repository/mysql"
	"Yuyu_Weibo/internal/service"

	"github.com/gin-gonic/gin"
)

// 所有响应统一 {"ok":bool, ...}；失败带 "error" 字符串
func ok(c *gin.Context, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["ok"] = true
	c.JSON(http.StatusOK, data)
}

func fail(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{"ok": false, "error": err.Error()})
}

// errStatus 错误族到状态码：前置校验 400、查无此记录(或无权限) 404、
// 唯一键冲突沿用原行为 500 带消息、其余后端失败 500
func errStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, mysql.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func userIDFromCtx(c *gin.Context) uint64 {
	if v, ok := c.Get("user_id"); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}
