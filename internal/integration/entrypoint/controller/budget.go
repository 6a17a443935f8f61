// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/domain/entity"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

const dateLayout = "2006-01-02"

// BudgetController handles budget endpoints.
type BudgetController struct {
	listUseCase         *budget.ListBudgetsUseCase
	createUseCase       *budget.CreateBudgetUseCase
	updateUseCase       *budget.UpdateBudgetUseCase
	deleteUseCase       *budget.DeleteBudgetUseCase
	currentUseCase      *budget.GetCurrentBudgetsUseCase
	alertsUseCase       *budget.GetBudgetAlertsUseCase
	duplicateUseCase    *budget.DuplicateBudgetUseCase
	recurringUseCase    *budget.CreateRecurringBudgetsUseCase
	fromPreviousUseCase *budget.CreateFromPreviousMonthUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	listUseCase *budget.ListBudgetsUseCase,
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	currentUseCase *budget.GetCurrentBudgetsUseCase,
	alertsUseCase *budget.GetBudgetAlertsUseCase,
	duplicateUseCase *budget.DuplicateBudgetUseCase,
	recurringUseCase *budget.CreateRecurringBudgetsUseCase,
	fromPreviousUseCase *budget.CreateFromPreviousMonthUseCase,
) *BudgetController {
	return &BudgetController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		currentUseCase:      currentUseCase,
		alertsUseCase:       alertsUseCase,
		duplicateUseCase:    duplicateUseCase,
		recurringUseCase:    recurringUseCase,
		fromPreviousUseCase: fromPreviousUseCase,
	}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budgets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidBudgetDateRange),
		})
		return
	}

	endDate, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid end_date format, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidBudgetDateRange),
		})
		return
	}

	scope, err := parseCategoryScope(req.CategoryIDs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	period := entity.BudgetPeriodMonth
	if req.Period != "" {
		period = entity.BudgetPeriod(req.Period)
	}

	input := budget.CreateBudgetInput{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		Amount:       decimal.NewFromFloat(req.Amount),
		Period:       period,
		StartDate:    startDate,
		EndDate:      endDate,
		Categories:   scope,
		AlertEnabled: true,
	}
	if req.AlertPercentage != nil {
		input.AlertPercentage = *req.AlertPercentage
	}
	if req.AlertEnabled != nil {
		input.AlertEnabled = *req.AlertEnabled
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := budget.UpdateBudgetInput{
		UserID:          userID,
		BudgetID:        budgetID,
		Name:            req.Name,
		Description:     req.Description,
		AlertPercentage: req.AlertPercentage,
		AlertEnabled:    req.AlertEnabled,
		IsActive:        req.IsActive,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Period != nil {
		period := entity.BudgetPeriod(*req.Period)
		input.Period = &period
	}
	if req.StartDate != nil {
		startDate, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidBudgetDateRange),
			})
			return
		}
		input.StartDate = &startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidBudgetDateRange),
			})
			return
		}
		input.EndDate = &endDate
	}
	if req.CategoryIDs != nil {
		scope, err := parseCategoryScope(*req.CategoryIDs)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.Categories = &scope
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	}); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetCurrent handles GET /budgets/current requests.
func (c *BudgetController) GetCurrent(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.currentUseCase.Execute(ctx.Request.Context(), budget.GetCurrentBudgetsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute current budgets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCurrentBudgetListResponse(output.Budgets))
}

// GetAlerts handles GET /budgets/alerts requests.
func (c *BudgetController) GetAlerts(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.alertsUseCase.Execute(ctx.Request.Context(), budget.GetBudgetAlertsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute budget alerts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetAlertListResponse(output.Alerts))
}

// Duplicate handles POST /budgets/:id/duplicate requests.
func (c *BudgetController) Duplicate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	output, err := c.duplicateUseCase.Execute(ctx.Request.Context(), budget.DuplicateBudgetInput{
		UserID:   userID,
		BudgetID: budgetID,
	})
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// CreateRecurring handles POST /budgets/recurring requests.
func (c *BudgetController) CreateRecurring(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateRecurringBudgetsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	scope, err := parseCategoryScope(req.CategoryIDs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	input := budget.CreateRecurringBudgetsInput{
		UserID:       userID,
		Name:         req.Name,
		Description:  req.Description,
		Amount:       decimal.NewFromFloat(req.Amount),
		Categories:   scope,
		AlertEnabled: true,
		Months:       req.Months,
	}
	if req.AlertPercentage != nil {
		input.AlertPercentage = *req.AlertPercentage
	}
	if req.AlertEnabled != nil {
		input.AlertEnabled = *req.AlertEnabled
	}

	output, err := c.recurringUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetListResponse(output.Budgets))
}

// CreateFromPreviousMonth handles POST /budgets/from-previous-month requests.
func (c *BudgetController) CreateFromPreviousMonth(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	// The body is optional; an empty body rolls into the current month.
	var req dto.CreateFromPreviousMonthRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body: " + err.Error(),
			})
			return
		}
	}

	input := budget.CreateFromPreviousMonthInput{
		UserID: userID,
	}
	if req.TargetMonth != nil {
		target, err := time.Parse("2006-01", *req.TargetMonth)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid target_month format, expected YYYY-MM",
			})
			return
		}
		input.TargetMonth = &target
	}

	output, err := c.fromPreviousUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetListResponse(output.Budgets))
}

// parseCategoryScope converts raw category ID strings into a scope. An empty
// list means the budget covers all categories.
func parseCategoryScope(raw []string) (entity.CategoryScope, error) {
	if len(raw) == 0 {
		return entity.AllCategories(), nil
	}
	ids := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return entity.CategoryScope{}, err
		}
		ids[i] = id
	}
	return entity.SpecificCategories(ids), nil
}

// respondUnauthenticated writes the standard missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrBudgetNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Budget not found",
			Code:  string(domainerror.ErrCodeBudgetNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound, domainerror.ErrCodeNoPreviousMonthBudgets:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedBudgetAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetDateRange,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeInvalidAlertPercentage,
		domainerror.ErrCodeInvalidRecurringMonths:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
