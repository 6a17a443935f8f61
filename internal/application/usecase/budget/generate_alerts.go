// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GenerateAlerts scans computed budgets and produces ranked alerts for those
// at or past their configured threshold. Pure function: the same input always
// yields the same output, and ties keep input order.
func GenerateAlerts(budgets []*entity.BudgetWithSpending) []*entity.BudgetAlert {
	alerts := make([]*entity.BudgetAlert, 0)

	for _, ws := range budgets {
		b := ws.Budget
		if !b.AlertEnabled {
			continue
		}
		if ws.PercentageUsed < b.AlertThreshold() {
			continue
		}

		alert := &entity.BudgetAlert{
			BudgetID:       b.ID,
			BudgetName:     b.Name,
			Amount:         b.Amount,
			Spent:          ws.ActualSpent,
			Remaining:      ws.Remaining,
			PercentageUsed: ws.PercentageUsed,
			DaysRemaining:  ws.DaysRemaining,
		}

		switch {
		case ws.PercentageUsed >= 100:
			alert.Type = entity.AlertTypeExceeded
			alert.Priority = entity.AlertPriorityHigh
			alert.Message = fmt.Sprintf(
				"Budget %q is %.1f%% over its limit",
				b.Name, ws.PercentageUsed-100,
			)
		case ws.PercentageUsed >= 90:
			alert.Type = entity.AlertTypeWarning
			alert.Priority = entity.AlertPriorityHigh
			alert.Message = fmt.Sprintf(
				"Budget %q has only %s left",
				b.Name, ws.Remaining.StringFixed(2),
			)
		default:
			alert.Type = entity.AlertTypeApproaching
			if ws.PercentageUsed >= 85 {
				alert.Priority = entity.AlertPriorityMedium
			} else {
				alert.Priority = entity.AlertPriorityLow
			}
			alert.Message = fmt.Sprintf(
				"Budget %q has used %.1f%% of its limit",
				b.Name, ws.PercentageUsed,
			)
		}

		alerts = append(alerts, alert)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Priority.Rank() > alerts[j].Priority.Rank()
	})

	return alerts
}

// GetBudgetAlertsInput represents the input for fetching budget alerts.
type GetBudgetAlertsInput struct {
	UserID uuid.UUID
}

// GetBudgetAlertsOutput represents the output of fetching budget alerts.
type GetBudgetAlertsOutput struct {
	Alerts []*entity.BudgetAlert
}

// GetBudgetAlertsUseCase computes spending for the user's current budgets and
// classifies the threshold alerts.
type GetBudgetAlertsUseCase struct {
	currentBudgetsUC *GetCurrentBudgetsUseCase
}

// NewGetBudgetAlertsUseCase creates a new GetBudgetAlertsUseCase instance.
func NewGetBudgetAlertsUseCase(currentBudgetsUC *GetCurrentBudgetsUseCase) *GetBudgetAlertsUseCase {
	return &GetBudgetAlertsUseCase{
		currentBudgetsUC: currentBudgetsUC,
	}
}

// Execute returns the ranked alerts for the user's current budgets.
func (uc *GetBudgetAlertsUseCase) Execute(
	ctx context.Context,
	input GetBudgetAlertsInput,
) (*GetBudgetAlertsOutput, error) {
	current, err := uc.currentBudgetsUC.Execute(ctx, GetCurrentBudgetsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &GetBudgetAlertsOutput{Alerts: GenerateAlerts(current.Budgets)}, nil
}
