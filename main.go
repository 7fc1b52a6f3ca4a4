package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/bmkabile/fixmyward/config"
	"github.com/bmkabile/fixmyward/controllers"
	"github.com/bmkabile/fixmyward/routes"
	"github.com/bmkabile/fixmyward/store"
	authUtils "github.com/bmkabile/fixmyward/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	st := store.NewStore(cfg.MapThresholds)
	if err := store.SeedDemo(st); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}
	log.Println("In-memory store seeded with demo data")

	quota := 0
	if cfg.RedisAddress != "" {
		config.ConnectRedis(cfg.RedisAddress, cfg.RedisPassword)
		quota = cfg.ReportQuota
	} else {
		log.Println("REDIS_ADDRESS not set; report quota disabled")
	}

	authUtils.RegisterValidators()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	nav := store.NewNavigator(st)

	routes.AuthRoutes(r, controllers.NewAuthController(st))
	routes.IssueRoutes(r, controllers.NewIssueController(st), quota)
	routes.MapRoutes(r, controllers.NewMapController(st))
	routes.DashboardRoutes(r, controllers.NewDashboardController(st))
	routes.NavRoutes(r, controllers.NewNavController(nav))
	routes.UserRoutes(r, controllers.NewUserController(st))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
