package main

import (
	"foodapp-backend/configs"
	"foodapp-backend/pkg/logger"
	"foodapp-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedLookups(); err != nil {
		log.Error("seed lookups failed", "error", err)
		return
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Error("seed catalog failed", "error", err)
		return
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg.JWTSecret, cfg.TokenTTL)

	log.Info("listening", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
	}
}
