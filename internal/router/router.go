package router

import (
	"Yuyu_Weibo/internal/handler"
	"Yuyu_Weibo/internal/middleware"

	"github.com/gin-gonic/gin"
)

// InitRouter 路由沿用老接口路径，保证前端不用改
func InitRouter() *gin.Engine {
	r := gin.Default()

	user := handler.NewUserHandler()
	weibo := handler.NewWeiboHandler()
	comment := handler.NewCommentHandler()
	like := handler.NewLikeHandler()
	follow := handler.NewFollowHandler()

	api := r.Group("/api")

	// 无需登录
	{
		api.POST("/register", user.Register)
		api.POST("/login", user.Login)
		api.POST("/token/refresh", user.TokenRefresh)
		api.GET("/weibos", weibo.List)
		api.GET("/comments", comment.List)
		api.GET("/followers", follow.Followers)
		api.GET("/following", follow.Following)
		api.GET("/user/info", user.GetInfo)
		api.GET("/like/count", like.Count)
	}

	// 登录态
	auth := api.Group("")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/logout", user.Logout)
		auth.POST("/user/update", user.UpdateProfile)
		auth.POST("/weibo", weibo.Create)
		auth.POST("/weibo/delete", weibo.Delete)
		auth.POST("/comment", comment.Create)
		auth.POST("/comment/delete", comment.Delete)
		auth.POST("/like", like.Like)
		auth.GET("/like/state", like.State)
		auth.GET("/user_likes", like.UserLikes)
		auth.POST("/follow", follow.Follow)
	}

	return r
}
