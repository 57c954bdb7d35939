package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/godz1llla/DAMDI-QR-ORG/configs"
	"github.com/godz1llla/DAMDI-QR-ORG/middlewares"
	"github.com/godz1llla/DAMDI-QR-ORG/routes"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := configs.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := configs.SeedSuperAdmin(db, cfg); err != nil {
		log.Fatalf("seed super admin: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// uploaded menu images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
