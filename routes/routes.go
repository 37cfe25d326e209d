package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/dhnguyen/podcast-tracker/config"
	"github.com/dhnguyen/podcast-tracker/controllers"
	"github.com/dhnguyen/podcast-tracker/services"
)

func SetupRouter(r *gin.Engine, db *gorm.DB, cfg config.Config) *gin.Engine {
	guestCtl := controllers.NewGuestController(services.NewGuestService(db))
	episodeCtl := controllers.NewEpisodeController(services.NewEpisodeService(db))
	assetCtl := controllers.NewAssetController(
		services.NewAssetService(db, cfg.UploadDir),
		cfg.UploadDir,
		cfg.MaxUploadBytes(),
	)
	healthCtl := controllers.NewHealthController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	api.GET("/health", healthCtl.Check)

	guests := api.Group("/guests")
	{
		guests.GET("", guestCtl.List)
		guests.GET("/:id", guestCtl.Get)
		guests.POST("", guestCtl.Create)
		guests.PATCH("/:id", guestCtl.Update)
		guests.DELETE("/:id", guestCtl.Delete)
	}

	episodes := api.Group("/episodes")
	{
		episodes.GET("", episodeCtl.List)
		episodes.GET("/pipeline", episodeCtl.Pipeline)
		episodes.GET("/:id", episodeCtl.Get)
		episodes.POST("", episodeCtl.Create)
		episodes.PATCH("/:id", episodeCtl.Update)
		episodes.DELETE("/:id", episodeCtl.Delete)
		episodes.POST("/:id/guests", episodeCtl.AssignGuest)
		episodes.DELETE("/:id/guests/:guestId", episodeCtl.RemoveGuest)
	}

	assets := api.Group("/assets")
	{
		assets.GET("", assetCtl.List)
		assets.GET("/:id", assetCtl.Get)
		assets.POST("/upload", assetCtl.Upload)
		assets.DELETE("/:id", assetCtl.Delete)
		assets.GET("/:id/download", assetCtl.Download)
	}

	return r
}
