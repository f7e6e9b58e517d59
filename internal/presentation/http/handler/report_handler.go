package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jesus1025/ventas-api/internal/application/service"
	"github.com/Jesus1025/ventas-api/internal/presentation/http/dto/request"
	"github.com/Jesus1025/ventas-api/internal/presentation/http/dto/response"
)

// ReportHandler handles monthly report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Monthly streams the month's sales report as a downloadable PDF. The period
// defaults to the current month.
func (h *ReportHandler) Monthly(c *gin.Context) {
	var req request.MonthlyReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	year, month := h.reportService.CurrentPeriod()
	if req.Year != 0 {
		year = req.Year
	}
	if req.Month != 0 {
		month = time.Month(req.Month)
	}

	rep, err := h.reportService.MonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rep.Filename))
	c.Data(http.StatusOK, "application/pdf", rep.Content)
}
