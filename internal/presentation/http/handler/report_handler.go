package handler

import (
	"time"

	"github.com/castrillo/cafepos-api/internal/application/service"
	"github.com/castrillo/cafepos-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles sales report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Summary returns the aggregated report for a period or an explicit range
// @Summary Sales summary
// @Tags reports
// @Router /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	if startStr != "" || endStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected RFC3339")
			return
		}
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected RFC3339")
			return
		}

		summary, err := h.reportService.SummaryRange(c.Request.Context(), start, end)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Report generated", summary)
		return
	}

	period := c.DefaultQuery("period", service.PeriodDaily)
	summary, err := h.reportService.Summary(c.Request.Context(), period, time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Report generated", summary)
}
