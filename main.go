package main

import (
	"fmt"
	"log"

	"github.com/rahul202k24/RestaurantPro/configs"
	"github.com/rahul202k24/RestaurantPro/middlewares"
	"github.com/rahul202k24/RestaurantPro/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	// DB
	configs.ConnectDB(cfg)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedGateways(cfg); err != nil {
		log.Fatalf("seed gateways failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.RequestLogger(logger))

	routes.RegisterRoutes(r, db, cfg, logger)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
