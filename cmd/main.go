package main

import (
	"flag"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dhnguyen/podcast-tracker/config"
	"github.com/dhnguyen/podcast-tracker/routes"
	"github.com/dhnguyen/podcast-tracker/utils"
)

func main() {
	seed := flag.Bool("seed", false, "insert sample data and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.Load()
	db := config.InitDB(cfg)

	if err := utils.EnsureUploadDirs(cfg.UploadDir); err != nil {
		log.Fatal("cannot create upload directories: ", err)
	}

	if *seed {
		if err := seedData(db); err != nil {
			log.Fatal("seed failed: ", err)
		}
		log.Println("sample data inserted")
		return
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r = routes.SetupRouter(r, db, cfg)

	log.Println("Server running at Port:" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped: ", err)
	}
}
