package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/application/service"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/dto/request"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/dto/response"
)

// CreditHandler handles credit customer and payment HTTP requests
type CreditHandler struct {
	creditService *service.CreditService
	reportService *service.ReportService
}

// NewCreditHandler creates a new credit handler
func NewCreditHandler(creditService *service.CreditService, reportService *service.ReportService) *CreditHandler {
	return &CreditHandler{creditService: creditService, reportService: reportService}
}

// ListCustomers handles listing all credit customers with their derived
// balances.
func (h *CreditHandler) ListCustomers(c *gin.Context) {
	summaries, err := h.reportService.CustomerSummaries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customers retrieved successfully", summaries)
}

// CreateCustomer handles adding a credit customer
func (h *CreditHandler) CreateCustomer(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.creditService.AddCustomer(c.Request.Context(), req.Name, req.Phone)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// GetCustomer handles fetching one customer's totals, bills, and payments.
func (h *CreditHandler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	detail, err := h.reportService.CustomerDetail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if detail == nil {
		response.NotFound(c, "Customer not found")
		return
	}

	response.OK(c, "Customer retrieved successfully", detail)
}

// DeleteCustomer handles removing a customer together with their credit
// links and payment history.
func (h *CreditHandler) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.creditService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreatePayment handles recording a repayment against a customer's balance
func (h *CreditHandler) CreatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	payment, err := h.creditService.AddPayment(c.Request.Context(), id, decimal.NewFromFloat(req.Amount), req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", payment)
}
