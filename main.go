package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/umar710/Inventory-Management-Backend/config"
	"github.com/umar710/Inventory-Management-Backend/controller"
	"github.com/umar710/Inventory-Management-Backend/inventory"
	"github.com/umar710/Inventory-Management-Backend/middleware"
	"github.com/umar710/Inventory-Management-Backend/routes"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := config.Connect(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	redisClient := config.ConnectRedis(cfg, logger)

	catalog := inventory.NewCatalog(db)
	ledger := inventory.NewLedger(db)
	service := inventory.NewService(catalog, ledger, redisClient, logger)

	productController := controller.NewProductController(service, redisClient)
	userController := controller.NewUserController(db, cfg.JWTSecret, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware(cfg.FrontendURL))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"message":     "Server is running",
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"environment": cfg.Environment,
		})
	})

	routes.UserRoutes(router, userController, middleware.RateLimiter(redisClient))
	routes.ProductRoutes(router, productController, db, cfg.JWTSecret)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server running", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	logger.Info("server stopped")
}
