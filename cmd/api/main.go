package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ContactForm_SheetsProject/internal/config"
	"ContactForm_SheetsProject/internal/handler"
	"ContactForm_SheetsProject/internal/logger"
	"ContactForm_SheetsProject/internal/sheets"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title        Contact Form API
// @version      1.0
// @description  연락처 폼 제출을 Google Sheets 로 전달하는 API
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main(): %v", err)
	}
	gin.SetMode(cfg.GinMode)

	zlog, err := logger.New(cfg.LogLevel, cfg.GinMode == gin.DebugMode, cfg.LogFile)
	if err != nil {
		log.Fatalf("main(): failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gateway, err := sheets.NewGateway(context.Background(), cfg, zlog.Named("sheets"))
	if err != nil {
		zlog.Fatal("main(): failed to create sheets gateway", zap.Error(err))
	}

	router, err := handler.NewRouter(handler.RouterConfig{
		Gateway:        gateway,
		Logger:         zlog.Named("http"),
		AllowOrigins:   cfg.CORSAllowOrigins,
		RequestTimeout: cfg.RequestTimeout,
		EnableMetrics:  true,
	})
	if err != nil {
		zlog.Fatal("main(): failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}
	go func() {
		zlog.Info("main(): listening", zap.String("addr", srv.Addr), zap.String("sheet_range", cfg.SheetRange))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("main(): server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zlog.Info("main(): shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("main(): graceful shutdown failed", zap.Error(err))
	}
}
