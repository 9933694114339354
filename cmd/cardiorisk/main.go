package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardiorisk/internal/config"
	httpapi "cardiorisk/internal/http"
	"cardiorisk/internal/service"

	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. 初始化日志
	logger, err := initLogger(cfg)
	if err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 3. 创建服务
	assessmentService, err := service.NewAssessmentService(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to create assessment service",
			zap.Error(err),
		)
	}
	defer assessmentService.Stop()

	// 4. 注册路由
	router := httpapi.NewRouter(logger)
	handler := httpapi.NewAssessmentHandler(assessmentService, logger)
	router.RegisterAssessmentRoutes(handler)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// 5. 启动 HTTP 服务（在 goroutine 中）
	serverErrChan := make(chan error, 1)
	go func() {
		logger.Info("Starting risk assessment server",
			zap.Int("port", cfg.Server.Port),
			zap.String("model_base_url", cfg.Model.BaseURL),
			zap.Bool("storage_enabled", cfg.Database.Enabled),
			zap.Bool("quota_enabled", cfg.Redis.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	// 6. 等待信号（优雅关闭）
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()),
		)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed",
				zap.Error(err),
			)
		}
	case err := <-serverErrChan:
		logger.Fatal("Server error",
			zap.Error(err),
		)
	}

	logger.Info("Risk assessment server stopped")
}

// initLogger 初始化日志
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Log.Format == "json" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}
