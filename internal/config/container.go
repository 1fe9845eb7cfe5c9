package config

import (
	"io"
	"net/http"

	"certidao-widget/internal/client"
	"certidao-widget/internal/domain"
	"certidao-widget/internal/render"
	"certidao-widget/internal/widget"
	"certidao-widget/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config       domain.Config
	Logger       domain.Logger
	ReportClient *client.ReportClient
	Renderer     *render.Renderer
	Controller   *widget.Controller
}

// NewContainer wires a controller that reports through notifier and copies
// into clipboard. Logs go to logOut.
func NewContainer(cfg domain.Config, logOut io.Writer, notifier domain.Notifier, clipboard domain.Clipboard) *Container {
	appLogger := logger.NewLoggerTo(logOut, cfg.GetLogLevel())

	httpClient := &http.Client{Timeout: cfg.GetRequestTimeout()}
	reportClient := client.NewReportClient(cfg.GetReportServerURL(), httpClient, appLogger)
	renderer := render.NewRenderer(cfg.GetReportServerURL())
	controller := widget.NewController(reportClient, renderer, notifier, clipboard, appLogger)

	return &Container{
		Config:       cfg,
		Logger:       appLogger,
		ReportClient: reportClient,
		Renderer:     renderer,
		Controller:   controller,
	}
}
