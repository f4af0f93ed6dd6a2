package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ngocsang1201/blog-server/config"
	"github.com/ngocsang1201/blog-server/database"
	"github.com/ngocsang1201/blog-server/routes"
)

func main() {
	config.Init(os.Getenv("CONFIG_PATH"))
	config.InitRedis()
	database.Connect()

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.GlobalConfig.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.AuthRouter(router)
	routes.PostRouter(router)
	routes.CommentRouter(router)
	routes.EventRouter(router)

	if err := router.Run(config.GlobalConfig.Server.Port); err != nil {
		log.Fatal(err)
	}
}
