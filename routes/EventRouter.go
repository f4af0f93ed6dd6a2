package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ngocsang1201/blog-server/realtime"
)

func EventRouter(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/socket", realtime.DefaultHub.HandleWS)
}
