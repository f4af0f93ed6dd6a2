package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ngocsang1201/blog-server/controllers"
	"github.com/ngocsang1201/blog-server/middlewares"
)

func CommentRouter(incomingRoutes *gin.Engine) {
	comments := incomingRoutes.Group("/comments")

	comments.GET("", controllers.GetCommentsByPostID)

	private := comments.Group("")
	private.Use(middlewares.RequireAuth)

	private.POST("", controllers.CreateComment)
	private.DELETE("/:commentId", controllers.DeleteComment)
	private.POST("/:commentId/like", controllers.LikeComment)
}
