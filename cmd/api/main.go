package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/address-query/app/config"
	"github.com/address-query/app/controllers"
	"github.com/address-query/app/services"
	"github.com/address-query/internal/normalizer"
	"github.com/address-query/routes"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	loadConfig()

	// 2. Khởi tạo logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("Starting Address Query Service")

	// 3. Đọc cấu hình truy vấn
	queryPath := viper.GetString("query.config")
	queryCfg, err := config.Load(queryPath)
	if err != nil {
		logger.Fatal("Failed to load query config", zap.String("path", queryPath), zap.Error(err))
	}
	logger.Info("Query config loaded",
		zap.String("default_language", queryCfg.DefaultLanguage),
		zap.Strings("languages", queryCfg.Languages),
		zap.Bool("lenient", queryCfg.Lenient))

	// 4. Khởi tạo services và controllers
	componentNormalizer := normalizer.NewComponentNormalizer(logger)
	queryService := services.NewQueryService(queryCfg, componentNormalizer, logger)
	queryController := controllers.NewQueryController(queryService, logger)

	// 5. Khởi tạo Gin router
	if viper.GetString("app.env") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	routes.SetupAllRoutes(router, queryController)

	// 6. Khởi động server
	srv := &http.Server{
		Addr:              ":" + viper.GetString("app.port"),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("app.shutdown_timeout"))
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// loadConfig load configuration từ file và env vars
func loadConfig() {
	viper.SetConfigName("app")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")

	// Set defaults
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.shutdown_timeout", 30*time.Second)
	viper.SetDefault("query.config", "config/query.yaml")

	// APP_PORT, APP_ENV, QUERY_CONFIG
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Cannot read config file: %v", err)
	}
}

// initLogger khởi tạo structured logger
func initLogger() *zap.Logger {
	var cfg zap.Config
	if viper.GetString("app.env") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}

	return logger
}
