package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/podshare-backend/controllers"
	"github.com/vnkhanh/podshare-backend/middleware"
	"github.com/vnkhanh/podshare-backend/ws"
)

func SetupRouter(r *gin.Engine) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logingoogle", controllers.GoogleLogin)
	}

	categories := api.Group("/categories")
	{
		categories.GET("", controllers.GetCategories)
		categories.POST("", middleware.AuthMiddleware(), controllers.CreateCategory)
	}

	podcasts := api.Group("/podcasts")
	{
		podcasts.POST("/add-podcast", middleware.AuthMiddleware(), controllers.AddPodcast)
		podcasts.GET("/get-podcasts", controllers.GetPodcasts)
		podcasts.GET("/get-user-podcasts", middleware.AuthMiddleware(), controllers.GetUserPodcasts)
		podcasts.GET("/get-podcast/:id", controllers.GetPodcastByID)
		podcasts.GET("/category/:cat", controllers.GetPodcastsByCategory)
	}

	r.GET("/ws/podcasts", ws.HandlePodcastFeed)

	return r
}
