package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/GodfreySilungwe/Quantic/configs"
	"github.com/GodfreySilungwe/Quantic/middlewares"
	"github.com/GodfreySilungwe/Quantic/pkg/logger"
	"github.com/GodfreySilungwe/Quantic/routes"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New(cfg.LogLevel)

	// DB
	db, err := configs.Open(cfg)
	if err != nil {
		log.Error("database connection failed", "err", err)
		os.Exit(1)
	}

	// migrate + seed
	if err := configs.SetupDatabase(db); err != nil {
		log.Error("migration failed", "err", err)
		os.Exit(1)
	}
	if err := configs.SeedMenu(db); err != nil {
		log.Error("seed failed", "err", err)
		os.Exit(1)
	}

	if cfg.AdminSecret == "" {
		log.Warn("ADMIN_SECRET is not set; admin endpoints are disabled")
	}
	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		log.Warn("could not create images dir", "dir", cfg.ImagesDir, "err", err)
	}

	// HTTP
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLog(log))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
