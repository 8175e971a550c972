package api

import (
	"errors"
	"strings"
	"time"

	"temphist/internal/report"
	"temphist/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	service  *services.Service
	reporter *report.Reporter
	logger   *zap.Logger
}

func NewHandler(service *services.Service, reporter *report.Reporter, logger *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		reporter: reporter,
		logger:   logger,
	}
}

// GetReport handles GET /api/v1/report
func (h *Handler) GetReport(c *fiber.Ctx) error {
	h.logger.Info("Generating analysis report")

	analysis, err := h.service.Run(c.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoData) {
			return c.JSON(fiber.Map{
				"message": "no valid data to analyze",
			})
		}

		h.logger.Error("Failed to generate report", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":   "Failed to fetch weather data",
			"details": err.Error(),
		})
	}

	return c.JSON(analysis)
}

// GetReportText handles GET /api/v1/report/text
func (h *Handler) GetReportText(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)

	analysis, err := h.service.Run(c.Context())
	if err != nil {
		var sb strings.Builder
		if errors.Is(err, services.ErrNoData) {
			h.reporter.RenderNoData(&sb)
			return c.SendString(sb.String())
		}

		h.logger.Error("Failed to generate text report", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).SendString("Error fetching weather data: " + err.Error() + "\n")
	}

	var sb strings.Builder
	h.reporter.Render(&sb, analysis)
	return c.SendString(sb.String())
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
	})
}

var startTime = time.Now()
