package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/movilfix/repairshop-api/internal/config"
	dbpkg "github.com/movilfix/repairshop-api/internal/db"
	"github.com/movilfix/repairshop-api/internal/logger"
	"github.com/movilfix/repairshop-api/internal/middleware"
	"github.com/movilfix/repairshop-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	logger.Init(cfg.LogLevel)
	defer logger.Sync()

	ctx := context.Background()
	client, database := dbpkg.NewDatabase(ctx, cfg)
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logger.L().Warn("mongo disconnect failed", logger.ErrorF(err))
		}
	}()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, database, cfg)

	logger.L().Info("server running", logger.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatal("failed to start server", logger.ErrorF(err))
	}
}
