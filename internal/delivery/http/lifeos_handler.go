package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"dinoverse/internal/delivery/http/dto"
	"dinoverse/internal/domain"
)

// LifeOSHandler handles the goals, rules, reflections and quotes endpoints
type LifeOSHandler struct {
	goalRepo       domain.GoalRepository
	ruleRepo       domain.RuleRepository
	reflectionRepo domain.ReflectionRepository
	quoteRepo      domain.QuoteRepository
}

// NewLifeOSHandler creates a new LifeOSHandler
func NewLifeOSHandler(
	goalRepo domain.GoalRepository,
	ruleRepo domain.RuleRepository,
	reflectionRepo domain.ReflectionRepository,
	quoteRepo domain.QuoteRepository,
) *LifeOSHandler {
	return &LifeOSHandler{
		goalRepo:       goalRepo,
		ruleRepo:       ruleRepo,
		reflectionRepo: reflectionRepo,
		quoteRepo:      quoteRepo,
	}
}

func lifeOSFilter(c echo.Context) (domain.LifeOSFilter, error) {
	filter := domain.LifeOSFilter{
		Q:        c.QueryParam("q"),
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
	}
	if v := c.QueryParam("from"); v != "" {
		from, err := time.Parse(dto.DateFormat, v)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if v := c.QueryParam("to"); v != "" {
		to, err := time.Parse(dto.DateFormat, v)
		if err != nil {
			return filter, err
		}
		// Inclusive upper bound on a date filter
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}
	return filter, nil
}

// Goals

// ListGoals returns goals, optionally narrowed by status or category
// GET /api/admin/goals?status=&category=
func (h *LifeOSHandler) ListGoals(c echo.Context) error {
	filter, err := lifeOSFilter(c)
	if err != nil {
		return BadRequestResponse(c, "from/to must be dates (YYYY-MM-DD)")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	goals, err := h.goalRepo.List(ctx, filter)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch goals", err)
	}
	return SuccessResponse(c, map[string]interface{}{"goals": goals})
}

// CreateGoal records a new goal
// POST /api/admin/goals
func (h *LifeOSHandler) CreateGoal(c echo.Context) error {
	var req dto.GoalRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	goal := &domain.Goal{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	if err := req.Apply(goal); err != nil {
		return BadRequestResponse(c, err.Error())
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.goalRepo.Create(ctx, goal); err != nil {
		return InternalServerErrorResponse(c, "Failed to create goal", err)
	}
	return CreatedResponse(c, goal)
}

// UpdateGoal rewrites an existing goal
// PUT /api/admin/goals/:id
func (h *LifeOSHandler) UpdateGoal(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid goal ID")
	}

	var req dto.GoalRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	goal, err := h.goalRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch goal", err)
	}

	if err := req.Apply(goal); err != nil {
		return BadRequestResponse(c, err.Error())
	}
	goal.UpdatedAt = time.Now()

	if err := h.goalRepo.Update(ctx, goal); err != nil {
		return RepoErrorResponse(c, "Failed to update goal", err)
	}
	return SuccessResponse(c, goal)
}

// DeleteGoal removes a goal
// DELETE /api/admin/goals/:id
func (h *LifeOSHandler) DeleteGoal(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid goal ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.goalRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete goal", err)
	}
	return SuccessResponse(c, map[string]bool{"deleted": true})
}

// Rules

// ListRules returns discipline rules in display order
// GET /api/admin/rules?category=
func (h *LifeOSHandler) ListRules(c echo.Context) error {
	filter, err := lifeOSFilter(c)
	if err != nil {
		return BadRequestResponse(c, "from/to must be dates (YYYY-MM-DD)")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rules, err := h.ruleRepo.List(ctx, filter)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch rules", err)
	}
	return SuccessResponse(c, map[string]interface{}{"rules": rules})
}

// CreateRule records a new discipline rule
// POST /api/admin/rules
func (h *LifeOSHandler) CreateRule(c echo.Context) error {
	var req dto.RuleRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	rule := &domain.Rule{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	req.Apply(rule)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.ruleRepo.Create(ctx, rule); err != nil {
		return InternalServerErrorResponse(c, "Failed to create rule", err)
	}
	return CreatedResponse(c, rule)
}

// UpdateRule rewrites an existing discipline rule
// PUT /api/admin/rules/:id
func (h *LifeOSHandler) UpdateRule(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid rule ID")
	}

	var req dto.RuleRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rule, err := h.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch rule", err)
	}

	req.Apply(rule)
	rule.UpdatedAt = time.Now()

	if err := h.ruleRepo.Update(ctx, rule); err != nil {
		return RepoErrorResponse(c, "Failed to update rule", err)
	}
	return SuccessResponse(c, rule)
}

// DeleteRule removes a discipline rule
// DELETE /api/admin/rules/:id
func (h *LifeOSHandler) DeleteRule(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid rule ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.ruleRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete rule", err)
	}
	return SuccessResponse(c, map[string]bool{"deleted": true})
}

// Reflections

// ListReflections returns reflections, newest first
// GET /api/admin/reflections?from=&to=&q=
func (h *LifeOSHandler) ListReflections(c echo.Context) error {
	filter, err := lifeOSFilter(c)
	if err != nil {
		return BadRequestResponse(c, "from/to must be dates (YYYY-MM-DD)")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	reflections, err := h.reflectionRepo.List(ctx, filter)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch reflections", err)
	}
	return SuccessResponse(c, map[string]interface{}{"reflections": reflections})
}

// CreateReflection records a new reflection
// POST /api/admin/reflections
func (h *LifeOSHandler) CreateReflection(c echo.Context) error {
	var req dto.ReflectionRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	reflection := &domain.Reflection{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	if err := req.Apply(reflection); err != nil {
		return BadRequestResponse(c, err.Error())
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.reflectionRepo.Create(ctx, reflection); err != nil {
		return InternalServerErrorResponse(c, "Failed to create reflection", err)
	}
	return CreatedResponse(c, reflection)
}

// UpdateReflection rewrites an existing reflection
// PUT /api/admin/reflections/:id
func (h *LifeOSHandler) UpdateReflection(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid reflection ID")
	}

	var req dto.ReflectionRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	reflection, err := h.reflectionRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch reflection", err)
	}

	if err := req.Apply(reflection); err != nil {
		return BadRequestResponse(c, err.Error())
	}
	reflection.UpdatedAt = time.Now()

	if err := h.reflectionRepo.Update(ctx, reflection); err != nil {
		return RepoErrorResponse(c, "Failed to update reflection", err)
	}
	return SuccessResponse(c, reflection)
}

// DeleteReflection removes a reflection
// DELETE /api/admin/reflections/:id
func (h *LifeOSHandler) DeleteReflection(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid reflection ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.reflectionRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete reflection", err)
	}
	return SuccessResponse(c, map[string]bool{"deleted": true})
}

// Quotes

// ListQuotes returns saved quotes
// GET /api/admin/quotes?q=
func (h *LifeOSHandler) ListQuotes(c echo.Context) error {
	filter, err := lifeOSFilter(c)
	if err != nil {
		return BadRequestResponse(c, "from/to must be dates (YYYY-MM-DD)")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	quotes, err := h.quoteRepo.List(ctx, filter)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to fetch quotes", err)
	}
	return SuccessResponse(c, map[string]interface{}{"quotes": quotes})
}

// CreateQuote records a new quote
// POST /api/admin/quotes
func (h *LifeOSHandler) CreateQuote(c echo.Context) error {
	var req dto.QuoteRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	now := time.Now()
	quote := &domain.Quote{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
	req.Apply(quote)

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.quoteRepo.Create(ctx, quote); err != nil {
		return InternalServerErrorResponse(c, "Failed to create quote", err)
	}
	return CreatedResponse(c, quote)
}

// UpdateQuote rewrites an existing quote
// PUT /api/admin/quotes/:id
func (h *LifeOSHandler) UpdateQuote(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid quote ID")
	}

	var req dto.QuoteRequest
	if !BindAndValidate(c, &req) {
		return nil
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	quote, err := h.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return RepoErrorResponse(c, "Failed to fetch quote", err)
	}

	req.Apply(quote)
	quote.UpdatedAt = time.Now()

	if err := h.quoteRepo.Update(ctx, quote); err != nil {
		return RepoErrorResponse(c, "Failed to update quote", err)
	}
	return SuccessResponse(c, quote)
}

// DeleteQuote removes a quote
// DELETE /api/admin/quotes/:id
func (h *LifeOSHandler) DeleteQuote(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return BadRequestResponse(c, "Invalid quote ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.quoteRepo.Delete(ctx, id); err != nil {
		return RepoErrorResponse(c, "Failed to delete quote", err)
	}
	return SuccessResponse(c, map[string]bool{"deleted": true})
}
