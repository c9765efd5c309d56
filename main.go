package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/dontkeep/order-menu-backend/configs"
	"github.com/dontkeep/order-menu-backend/middlewares"
	"github.com/dontkeep/order-menu-backend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	db, err := configs.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() {
		if err := configs.Close(db); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := configs.SeedRoles(db); err != nil {
		log.Fatalf("seed roles: %v", err)
	}
	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := configs.SeedOngkir(db); err != nil {
		log.Fatalf("seed ongkir: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
