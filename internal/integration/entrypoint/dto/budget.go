// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name            string   `json:"name" binding:"required,max=255"`
	Description     string   `json:"description,omitempty"`
	Amount          float64  `json:"amount" binding:"required,gt=0"`
	Period          string   `json:"period,omitempty" binding:"omitempty,oneof=week month quarter year custom"`
	StartDate       string   `json:"start_date" binding:"required"`
	EndDate         string   `json:"end_date" binding:"required"`
	CategoryIDs     []string `json:"category_ids,omitempty" binding:"omitempty,dive,uuid"`
	AlertPercentage *float64 `json:"alert_percentage,omitempty" binding:"omitempty,gte=0,lte=100"`
	AlertEnabled    *bool    `json:"alert_enabled,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
// Absent fields keep their current values.
type UpdateBudgetRequest struct {
	Name            *string   `json:"name,omitempty" binding:"omitempty,max=255"`
	Description     *string   `json:"description,omitempty"`
	Amount          *float64  `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Period          *string   `json:"period,omitempty" binding:"omitempty,oneof=week month quarter year custom"`
	StartDate       *string   `json:"start_date,omitempty"`
	EndDate         *string   `json:"end_date,omitempty"`
	CategoryIDs     *[]string `json:"category_ids,omitempty" binding:"omitempty,dive,uuid"`
	AlertPercentage *float64  `json:"alert_percentage,omitempty" binding:"omitempty,gte=0,lte=100"`
	AlertEnabled    *bool     `json:"alert_enabled,omitempty"`
	IsActive        *bool     `json:"is_active,omitempty"`
}

// CreateRecurringBudgetsRequest represents the request body for recurring budget generation.
type CreateRecurringBudgetsRequest struct {
	Name            string   `json:"name" binding:"required,max=255"`
	Description     string   `json:"description,omitempty"`
	Amount          float64  `json:"amount" binding:"required,gt=0"`
	CategoryIDs     []string `json:"category_ids,omitempty" binding:"omitempty,dive,uuid"`
	AlertPercentage *float64 `json:"alert_percentage,omitempty" binding:"omitempty,gte=0,lte=100"`
	AlertEnabled    *bool    `json:"alert_enabled,omitempty"`
	Months          int      `json:"months" binding:"required,min=1,max=24"`
}

// CreateFromPreviousMonthRequest represents the request body for rolling budgets forward.
type CreateFromPreviousMonthRequest struct {
	TargetMonth *string `json:"target_month,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Amount          string    `json:"amount"`
	Period          string    `json:"period"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	CategoryIDs     []string  `json:"category_ids"`
	AllCategories   bool      `json:"all_categories"`
	AlertPercentage float64   `json:"alert_percentage"`
	AlertEnabled    bool      `json:"alert_enabled"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BudgetWithSpendingResponse composes a budget with its derived spending figures.
type BudgetWithSpendingResponse struct {
	BudgetResponse
	ActualSpent    string  `json:"actual_spent"`
	Remaining      string  `json:"remaining"`
	PercentageUsed float64 `json:"percentage_used"`
	IsOverBudget   bool    `json:"is_over_budget"`
	DaysRemaining  int     `json:"days_remaining"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// CurrentBudgetListResponse represents the response for current budgets with spending.
type CurrentBudgetListResponse struct {
	Budgets []BudgetWithSpendingResponse `json:"budgets"`
}

// BudgetAlertResponse represents a single budget alert in API responses.
type BudgetAlertResponse struct {
	BudgetID       string  `json:"budget_id"`
	BudgetName     string  `json:"budget_name"`
	Type           string  `json:"type"`
	Priority       string  `json:"priority"`
	Message        string  `json:"message"`
	Amount         string  `json:"amount"`
	Spent          string  `json:"spent"`
	Remaining      string  `json:"remaining"`
	PercentageUsed float64 `json:"percentage_used"`
	DaysRemaining  int     `json:"days_remaining"`
}

// BudgetAlertListResponse represents the response for budget alerts.
type BudgetAlertListResponse struct {
	Alerts []BudgetAlertResponse `json:"alerts"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	categoryIDs := make([]string, 0)
	for _, id := range b.Categories.CategoryIDs() {
		categoryIDs = append(categoryIDs, id.String())
	}

	return BudgetResponse{
		ID:              b.ID.String(),
		UserID:          b.UserID.String(),
		Name:            b.Name,
		Description:     b.Description,
		Amount:          b.Amount.StringFixed(2),
		Period:          string(b.Period),
		StartDate:       b.StartDate.Format("2006-01-02"),
		EndDate:         b.EndDate.Format("2006-01-02"),
		CategoryIDs:     categoryIDs,
		AllCategories:   b.Categories.IsAll(),
		AlertPercentage: b.AlertPercentage,
		AlertEnabled:    b.AlertEnabled,
		IsActive:        b.IsActive,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of budgets to BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		Budgets: responses,
	}
}

// ToBudgetWithSpendingResponse converts a BudgetWithSpending to its DTO.
func ToBudgetWithSpendingResponse(ws *entity.BudgetWithSpending) BudgetWithSpendingResponse {
	return BudgetWithSpendingResponse{
		BudgetResponse: ToBudgetResponse(ws.Budget),
		ActualSpent:    ws.ActualSpent.StringFixed(2),
		Remaining:      ws.Remaining.StringFixed(2),
		PercentageUsed: ws.PercentageUsed,
		IsOverBudget:   ws.IsOverBudget,
		DaysRemaining:  ws.DaysRemaining,
	}
}

// ToCurrentBudgetListResponse converts a list of BudgetWithSpending to its DTO.
func ToCurrentBudgetListResponse(budgets []*entity.BudgetWithSpending) CurrentBudgetListResponse {
	responses := make([]BudgetWithSpendingResponse, len(budgets))
	for i, ws := range budgets {
		responses[i] = ToBudgetWithSpendingResponse(ws)
	}
	return CurrentBudgetListResponse{
		Budgets: responses,
	}
}

// ToBudgetAlertListResponse converts a list of BudgetAlert to its DTO.
func ToBudgetAlertListResponse(alerts []*entity.BudgetAlert) BudgetAlertListResponse {
	responses := make([]BudgetAlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = BudgetAlertResponse{
			BudgetID:       a.BudgetID.String(),
			BudgetName:     a.BudgetName,
			Type:           string(a.Type),
			Priority:       string(a.Priority),
			Message:        a.Message,
			Amount:         a.Amount.StringFixed(2),
			Spent:          a.Spent.StringFixed(2),
			Remaining:      a.Remaining.StringFixed(2),
			PercentageUsed: a.PercentageUsed,
			DaysRemaining:  a.DaysRemaining,
		}
	}
	return BudgetAlertListResponse{
		Alerts: responses,
	}
}
