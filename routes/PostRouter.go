package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ngocsang1201/blog-server/controllers"
	"github.com/ngocsang1201/blog-server/middlewares"
)

func PostRouter(incomingRoutes *gin.Engine) {
	posts := incomingRoutes.Group("/posts")

	posts.GET("", controllers.GetAllPosts)
	posts.GET("/search", controllers.SearchPosts)
	posts.GET("/:slug", controllers.GetPostBySlug)

	private := posts.Group("")
	private.Use(middlewares.RequireAuth)

	private.GET("/mine", controllers.GetMyPosts)
	private.GET("/saved", controllers.GetSavedPosts)
	// the wildcard carries a post id here; gin requires one name per segment
	private.GET("/:slug/edit", controllers.GetPostForEdit)
	private.POST("", controllers.CreatePost)
	private.PUT("/:postId", controllers.UpdatePost)
	private.DELETE("/:postId", controllers.DeletePost)
	private.POST("/:postId/like", controllers.LikePost)
	private.POST("/:postId/save", controllers.SavePost)
	private.DELETE("/:postId/save", controllers.UnsavePost)
}
