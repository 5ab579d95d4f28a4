package http

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dinoverse/internal/delivery/http/dto"
	"dinoverse/internal/domain"
	"dinoverse/internal/usecase"
)

// TradeHandler handles the trading-journal endpoints
type TradeHandler struct {
	tradeRepo domain.TradeRepository
	journal   *usecase.JournalService
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(tradeRepo domain.TradeRepository, journal *usecase.JournalService) *TradeHandler {
	return &TradeHandler{tradeRepo: tradeRepo, journal: journal}
}

// ListTrades returns trades matching the filter plus the journal statistics
// GET /api/admin/trades?from=&to=&instrument=&status=
func (h *TradeHandler) ListTrades(c echo.Context) error {
	filter := domain.TradeFilter{
		Instrument: c.QueryParam("instrument"),
		Status:     c.QueryParam("status"),
	}
	if v := c.QueryParam("from"); v != "" {
		from, err := time.Parse(dto.DateFormat, v)
		if err != nil {
			return BadRequestResponse(c, "from must be a date (YYYY-MM-DD)")
		}
		filter.From = &from
	}
	if v := c.QueryParam("to"); v != "" {
		to, err := time.Parse(dto.DateFormat, v)
		if err != nil {
			return BadRequestResponse(c, "to must be a date (YYYY-MM-DD)")
		}
		// Inclusive upper bound on a date filter
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	trades, summary, err := h.journal.ListWithStats(ctx, filter)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch trades", err)
	}

	return SuccessResponse(c, map[string]interface{}{
		"trades":  trades,
		"summary": summary,
	})
}

// GetStats returns the journal statistics alone
// GET /api/admin/trades/stats
func (h *TradeHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	summary, err := h.journal.Stats(ctx)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to compute statistics", err)
	}

	return SuccessResponse(c, summary)
}

// CreateTrade records a new trade
// POST /api/admin/trades
func (h *TradeHandler) CreateTrade(c echo.Context) error {
	var req dto.TradeRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	trade := &domain.Trade{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	if err := req.Apply(trade); err != nil {
		return BadRequestResponse(c, err.Error())
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.tradeRepo.Create(ctx, trade); err != nil {
		return InternalServerErrorResponse(c, "Failed to create trade", err)
	}

	return CreatedResponse(c, trade)
}

// UpdateTrade rewrites an existing trade
// PUT /api/admin/trades/:id
func (h *TradeHandler) UpdateTrade(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid trade ID")
	}

	var req dto.TradeRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	trade, err := h.tradeRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch trade", err)
	}

	if err := req.Apply(trade); err != nil {
		return BadRequestResponse(c, err.Error())
	}
	trade.UpdatedAt = time.Now()

	if err := h.tradeRepo.Update(ctx, trade); err != nil {
		return RepoErrorResponse(c, "Failed to update trade", err)
	}

	return SuccessResponse(c, trade)
}

// DeleteTrade removes a trade
// DELETE /api/admin/trades/:id
func (h *TradeHandler) DeleteTrade(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return BadRequestResponse(c, "Invalid trade ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.tradeRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete trade", err)
	}

	return SuccessResponse(c, map[string]bool{"deleted": true})
}
