package handlers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"gudang/internal/services"
)

// ReportHandler handles HTTP requests for inventory statistics and the CSV
// export.
type ReportHandler struct {
	service *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{
		service: service,
	}
}

// RegisterRoutes registers the report routes with the Fiber app. These must
// be registered before the product /:id routes so /stats and /export/csv
// are not captured as ids.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	reportRoutes := router.Group("/products")
	reportRoutes.Get("/stats", h.HandleStats)
	reportRoutes.Get("/export/csv", h.HandleExportCSV)
}

// HandleStats serves GET /products/stats.
func (h *ReportHandler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats()
	if err != nil {
		log.Printf("Error computing product stats: %v", err)
		return respondError(c, err)
	}
	return c.JSON(stats)
}

// HandleExportCSV serves GET /products/export/csv as a file attachment.
// An empty collection yields a 400 rather than an empty file.
func (h *ReportHandler) HandleExportCSV(c *fiber.Ctx) error {
	filename, data, err := h.service.ExportCSV()
	if err != nil {
		log.Printf("Error exporting products to CSV: %v", err)
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}
