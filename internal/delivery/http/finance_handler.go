package http

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dinoverse/internal/delivery/http/dto"
	"dinoverse/internal/domain"
	"dinoverse/internal/stats"
)

// FinanceHandler handles the finance tracker endpoints
type FinanceHandler struct {
	txRepo domain.TransactionRepository
}

// NewFinanceHandler creates a new FinanceHandler
func NewFinanceHandler(txRepo domain.TransactionRepository) *FinanceHandler {
	return &FinanceHandler{txRepo: txRepo}
}

// ListTransactions returns transactions for the requested window plus the
// finance summary computed over the same set
// GET /api/admin/transactions?month=&year=&type=&category=
func (h *FinanceHandler) ListTransactions(c echo.Context) error {
	filter := domain.TransactionFilter{
		Type:     c.QueryParam("type"),
		Category: c.QueryParam("category"),
	}
	if v := c.QueryParam("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil || month < 1 || month > 12 {
			return BadRequestResponse(c, "month must be a number between 1 and 12")
		}
		filter.Month = month
	}
	if v := c.QueryParam("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return BadRequestResponse(c, "year must be a number")
		}
		filter.Year = year
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	txs, err := h.txRepo.List(ctx, filter)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch transactions", err)
	}

	return SuccessResponse(c, map[string]interface{}{
		"transactions": txs,
		"summary":      stats.SummarizeTransactions(txs),
	})
}

// CreateTransaction records a new finance entry
// POST /api/admin/transactions
func (h *FinanceHandler) CreateTransaction(c echo.Context) error {
	var req dto.TransactionRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	tx := &domain.Transaction{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	if err := req.Apply(tx); err != nil {
		return BadRequestResponse(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.txRepo.Create(ctx, tx); err != nil {
		return InternalServerErrorResponse(c, "Failed to create transaction", err)
	}

	return CreatedResponse(c, tx)
}

// UpdateTransaction rewrites an existing finance entry
// PUT /api/admin/transactions/:id
func (h *FinanceHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid transaction ID")
	}

	var req dto.TransactionRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tx, err := h.txRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch transaction", err)
	}

	if err := req.Apply(tx); err != nil {
		return BadRequestResponse(c, err.Error())
	}
	tx.UpdatedAt = time.Now()

	if err := h.txRepo.Update(ctx, tx); err != nil {
		return RepoErrorResponse(c, "Failed to update transaction", err)
	}

	return SuccessResponse(c, tx)
}

// DeleteTransaction removes a finance entry
// DELETE /api/admin/transactions/:id
func (h *FinanceHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid transaction ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.txRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete transaction", err)
	}

	return SuccessResponse(c, map[string]bool{"deleted": true})
}
