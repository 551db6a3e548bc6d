package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sridharvel/annapoorna-pos/internal/application/service"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/dto/request"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/dto/response"
)

// ReportHandler handles daily record and reporting HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// DailyRecords handles the day-by-day cash/credit/expense/profit report for
// an inclusive date range.
func (h *ReportHandler) DailyRecords(c *gin.Context) {
	var rng request.DateRangeRequest
	if err := c.ShouldBindQuery(&rng); err != nil {
		response.BadRequest(c, "start and end query parameters are required")
		return
	}

	records, err := h.reportService.DailyRecords(c.Request.Context(), rng.Start, rng.End)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily records retrieved successfully", records)
}

// BillsByDate handles listing the individual bills of one day.
func (h *ReportHandler) BillsByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.BadRequest(c, "date query parameter is required")
		return
	}

	bills, err := h.reportService.BillsByDate(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bills retrieved successfully", bills)
}
