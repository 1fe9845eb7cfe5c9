package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"certidao-widget/internal/clipboard"
	"certidao-widget/internal/config"
	"certidao-widget/internal/handler"
	"certidao-widget/internal/widget"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	// Wiring
	cfg := config.NewConfig()
	alerts := widget.NewAlertQueue()
	clip := clipboard.NewPage()
	container := config.NewContainer(cfg, os.Stdout, alerts, clip)

	widgetHandler := handler.NewWidgetHandler(
		container.Controller,
		alerts,
		cfg.GetMaxFileSize(),
		container.Logger,
	)

	router := handler.NewRouter(widgetHandler, cfg.GetAllowedOrigins())

	server := &http.Server{
		Addr:    ":" + cfg.GetServerPort(),
		Handler: router,
	}

	go func() {
		container.Logger.Info("Widget bridge listening", "address", server.Addr, "report_server", cfg.GetReportServerURL())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()

	container.Logger.Info("Server exited")
}
