package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"Yuyu_Weibo/internal/pkg"
	"Yuyu_Weibo/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// AuthMiddleware Bearer token 鉴权：JWT 签名有效且和 Redis 白名单里的
// 一致才放行，通过后顺延会话过期时间并注入 user_id。
// 没带 Authorization 头时兼容旧客户端的 ?user_id= 传参。
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			// 旧版前端直接传 user_id，保留兼容
			if raw := c.Query(ContextUserIDKey); raw != "" {
				if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
					c.Set(ContextUserIDKey, id)
					c.Next()
					return
				}
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid authorization format"})
			return
		}

		tokenStr := parts[1]
		claims, err := pkg.ParseAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid or expired token"})
			return
		}

		sessions := &redis.SessionRepository{}
		originToken, err := sessions.Get(c.Request.Context(), claims.UserID)
		if err != nil || originToken != tokenStr {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "session expired"})
			return
		}

		if err = sessions.Extend(c.Request.Context(), claims.UserID); err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}
