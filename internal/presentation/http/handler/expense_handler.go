package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sridharvel/annapoorna-pos/internal/application/service"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/dto/request"
	"github.com/sridharvel/annapoorna-pos/internal/presentation/http/dto/response"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// List handles listing expenses for a date range, or a single day when
// ?date= is given.
func (h *ExpenseHandler) List(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		expenses, err := h.expenseService.GetExpensesByDate(c.Request.Context(), date)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Expenses retrieved successfully", expenses)
		return
	}

	var rng request.DateRangeRequest
	if err := c.ShouldBindQuery(&rng); err != nil {
		response.BadRequest(c, "start and end query parameters are required")
		return
	}

	expenses, err := h.expenseService.GetExpensesByDateRange(c.Request.Context(), rng.Start, rng.End)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expenses retrieved successfully", expenses)
}

// Create handles recording an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req request.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	expense, err := h.expenseService.AddExpense(c.Request.Context(), req.Description, decimal.NewFromFloat(req.Amount), req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense recorded successfully", expense)
}

// Update handles correcting an expense entry
func (h *ExpenseHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	var req request.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), id, req.Description, decimal.NewFromFloat(req.Amount), req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles removing an expense entry
func (h *ExpenseHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
