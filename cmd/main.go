package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/vnkhanh/podshare-backend/config"
	"github.com/vnkhanh/podshare-backend/controllers"
	"github.com/vnkhanh/podshare-backend/routes"
	"github.com/vnkhanh/podshare-backend/services"
	"github.com/vnkhanh/podshare-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found")
	}

	config.InitDB()

	controllers.InitPodcastService(
		services.NewPodcastService(config.DB, utils.NewSupabaseStore()),
	)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Podshare server is running")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server running at Port:" + port)
	r.Run(":" + port)
}
