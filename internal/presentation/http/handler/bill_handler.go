package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/application/service"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/dto/request"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/dto/response"
	"github.com/sridharvel/annapoorna-pos/pkg/pagination"
)

// BillHandler handles billing HTTP requests
type BillHandler struct {
	billingService *service.BillingService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billingService *service.BillingService) *BillHandler {
	return &BillHandler{billingService: billingService}
}

func cartLines(lines []request.BillLineRequest) []service.CartLineInput {
	out := make([]service.CartLineInput, 0, len(lines))
	for _, l := range lines {
		out = append(out, service.CartLineInput{
			ItemID:   l.ItemID,
			Quantity: l.Quantity,
			Rate:     decimal.NewFromFloat(l.Rate),
		})
	}
	return out
}

// Create handles finalizing a cart into a bill. The whole bill is written
// atomically; a credit sale that names a missing customer leaves nothing
// behind.
func (h *BillHandler) Create(c *gin.Context) {
	var req request.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	bill, err := h.billingService.CreateBill(c.Request.Context(), cartLines(req.Lines), req.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Bill created successfully", bill)
}

// List handles paginated bill history, newest first.
func (h *BillHandler) List(c *gin.Context) {
	var filter request.BillHistoryRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}

	result, err := h.billingService.GetBillHistory(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Bills retrieved successfully", result)
}

// Get handles fetching a single bill with its lines
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	bill, err := h.billingService.GetBill(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill retrieved successfully", bill)
}

// GetItems handles fetching the line details of a bill joined with item names
func (h *BillHandler) GetItems(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	lines, err := h.billingService.GetBillItems(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill items retrieved successfully", lines)
}

// Update handles replacing the lines of an existing bill. The bill number
// and timestamp stay as they were; only the lines and total change.
func (h *BillHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid bill ID")
		return
	}

	var req request.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	bill, err := h.billingService.UpdateBill(c.Request.Context(), id, cartLines(req.Lines))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill updated successfully", bill)
}
