package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexthora/booking-api/internal/cache"
	"github.com/nexthora/booking-api/internal/config"
	dbpkg "github.com/nexthora/booking-api/internal/db"
	"github.com/nexthora/booking-api/internal/logger"
	"github.com/nexthora/booking-api/internal/middleware"
	"github.com/nexthora/booking-api/internal/routes"
	"github.com/nexthora/booking-api/internal/timezone"
)

func main() {

	logger.Init()
	defer logger.Sync()

	cfg := config.Load()
	timezone.Init(cfg.Timezone)

	db := dbpkg.NewDB(cfg)

	rdb := cache.NewRedisClient(cfg.RedisAddr)
	availCache := cache.NewAvailabilityCache(rdb)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, availCache)

	logger.L().Infof("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatalf("failed to start server: %v", err)
	}
}
