package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"task-tracker/tasktracker/config"
	"task-tracker/tasktracker/database"
	"task-tracker/tasktracker/logger"
	"task-tracker/tasktracker/middleware"
	"task-tracker/tasktracker/routes"
	"task-tracker/tasktracker/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := database.Setup(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	if cfg.SeedData {
		if err := database.Seed(db.DB); err != nil {
			zapLogger.Fatal("Failed to seed database", zap.Error(err))
		}
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	routes.RegisterHealthRoutes(router)
	routes.RegisterEmployeeRoutes(router, db, services.EmployeeServiceInstance)
	routes.RegisterTaskRoutes(router, db, services.TaskServiceInstance)
	routes.RegisterDashboardRoutes(router, db, services.StatsServiceInstance)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		zapLogger.Info("Shutting down server...")
		os.Exit(0)
	}()

	addr := ":" + cfg.AppPort
	zapLogger.Info("API server is running", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
