package main

import (
	"fmt"
	"log"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"
	"backend/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}
	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Redis (optional — ว่าง = ไม่มี idempotency guard)
	rdb, err := configs.OpenRedis(cfg)
	if err != nil {
		log.Printf("⚠️ redis unavailable, idempotency guard disabled: %v", err)
		rdb = nil
	}

	// Blob store
	store, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("init upload dir failed: %v", err)
	}

	// HTTP
	r := gin.Default()

	// ✅ Enable CORS
	r.Use(middlewares.CORSMiddleware())

	// ✅ Serve uploaded files (item photos, registration docs)
	r.Static("/uploads", cfg.UploadDir)

	// ✅ Register API routes
	routes.RegisterRoutes(r, cfg, rdb, store)

	// ✅ Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("🚀 Server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
