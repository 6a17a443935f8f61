// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/application/usecase/health"
	"github.com/budget-tracker/backend/internal/application/usecase/insight"
	"github.com/budget-tracker/backend/internal/application/usecase/trend"
	domainerror "github.com/budget-tracker/backend/internal/domain/error"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles derived dashboard endpoints.
type DashboardController struct {
	healthScoreUseCase *health.GetHealthScoreUseCase
	trendsUseCase      *trend.GetBudgetTrendsUseCase
	insightsUseCase    *insight.GetInsightsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	healthScoreUseCase *health.GetHealthScoreUseCase,
	trendsUseCase *trend.GetBudgetTrendsUseCase,
	insightsUseCase *insight.GetInsightsUseCase,
) *DashboardController {
	return &DashboardController{
		healthScoreUseCase: healthScoreUseCase,
		trendsUseCase:      trendsUseCase,
		insightsUseCase:    insightsUseCase,
	}
}

// GetHealthScore handles GET /dashboard/health-score requests.
func (c *DashboardController) GetHealthScore(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.healthScoreUseCase.Execute(ctx.Request.Context(), health.GetHealthScoreInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute health score",
			Code:  string(domainerror.ErrCodeDashboardInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHealthScoreResponse(output.HealthScore))
}

// GetTrends handles GET /dashboard/trends requests. The months query parameter
// selects the window length and defaults to six.
func (c *DashboardController) GetTrends(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	months := 0
	if raw := ctx.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "months must be an integer",
				Code:  string(domainerror.ErrCodeInvalidMonthCount),
			})
			return
		}
		months = parsed
	}

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), trend.GetBudgetTrendsInput{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTrendListResponse(output.Trends))
}

// GetInsights handles GET /dashboard/insights requests.
func (c *DashboardController) GetInsights(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), insight.GetInsightsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate insights",
			Code:  string(domainerror.ErrCodeDashboardInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightListResponse(output.Insights))
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dashboardErr *domainerror.DashboardError
	if errors.As(err, &dashboardErr) {
		statusCode := http.StatusInternalServerError
		if dashboardErr.Code == domainerror.ErrCodeInvalidMonthCount {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dashboardErr.Message,
			Code:  string(dashboardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeDashboardInternalError),
	})
}
