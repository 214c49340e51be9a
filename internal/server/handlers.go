package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"GoldSignal/internal/model"
	"GoldSignal/internal/strategy"
)

// StatusReporter exposes the periodic scheduler state.
type StatusReporter interface {
	Running() bool
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status             string `json:"status"`
	TelegramConfigured bool   `json:"telegram_configured"`
	SchedulerRunning   bool   `json:"scheduler_running"`
}

var biasColors = map[model.Bias]string{
	model.BiasBuy:  "green",
	model.BiasSell: "red",
}

const neutralColor = "orange"

type dashboardView struct {
	Signal         model.Signal
	Color          string
	TelegramStatus string
	Cadence        string
}

// SignalHandler serves the dashboard, the signal API and the health check.
type SignalHandler struct {
	provider           strategy.Provider
	scheduler          StatusReporter
	telegramConfigured bool
	interval           time.Duration
}

// NewSignalHandler creates a SignalHandler.
func NewSignalHandler(provider strategy.Provider, scheduler StatusReporter, telegramConfigured bool, interval time.Duration) *SignalHandler {
	return &SignalHandler{
		provider:           provider,
		scheduler:          scheduler,
		telegramConfigured: telegramConfigured,
		interval:           interval,
	}
}

func (h *SignalHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Dashboard)
	e.GET("/api/signal", h.Signal)
	e.GET("/health", h.Health)
}

// Dashboard handles GET /
func (h *SignalHandler) Dashboard(c echo.Context) error {
	sig := h.provider.Signal()
	view := dashboardView{
		Signal:         sig,
		Color:          BiasColor(sig.Bias),
		TelegramStatus: "Not configured",
		Cadence:        cadence(h.interval),
	}
	if h.telegramConfigured {
		view.TelegramStatus = "Active"
	}
	return c.Render(http.StatusOK, "dashboard.html", view)
}

// Signal handles GET /api/signal
func (h *SignalHandler) Signal(c echo.Context) error {
	return c.JSON(http.StatusOK, h.provider.Signal())
}

// Health handles GET /health
func (h *SignalHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status:             "healthy",
		TelegramConfigured: h.telegramConfigured,
		SchedulerRunning:   h.scheduler != nil && h.scheduler.Running(),
	})
}

// BiasColor maps a bias to its dashboard color.
func BiasColor(b model.Bias) string {
	if c, ok := biasColors[b]; ok {
		return c
	}
	return neutralColor
}

func cadence(interval time.Duration) string {
	if interval == time.Hour {
		return "Updates every hour"
	}
	return "Updates every " + interval.String()
}
