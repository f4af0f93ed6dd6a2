package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ngocsang1201/blog-server/config"
	"github.com/ngocsang1201/blog-server/controllers"
	"github.com/ngocsang1201/blog-server/middlewares"
)

func AuthRouter(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/register", controllers.Register)

	loginLimiter := middlewares.LoginRateLimiter(config.RedisClient, 5, time.Minute)
	incomingRoutes.POST("/login", loginLimiter, controllers.Login)

	incomingRoutes.GET("/me", middlewares.RequireAuth, controllers.GetMe)
}
