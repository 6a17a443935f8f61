// Package insight contains insight generation use cases.
package insight

import (
	"fmt"
	"sort"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// maxInsights caps how many insights a single request returns.
const maxInsights = 4

// GenerateInsights evaluates each insight rule independently against the
// snapshot, ranks the results by type weight, and truncates to four. Pure
// function: ties keep rule order.
func GenerateInsights(snapshot entity.FinancialSnapshot) []*entity.Insight {
	insights := make([]*entity.Insight, 0, maxInsights)

	switch {
	case snapshot.SavingsRate > 20:
		insights = append(insights, &entity.Insight{
			Type:    entity.InsightTypePositive,
			Title:   "Strong Savings",
			Message: fmt.Sprintf("You are saving %.1f%% of your income this month. Keep it up!", snapshot.SavingsRate),
			Icon:    "piggy-bank",
		})
	case snapshot.SavingsRate > 0 && snapshot.SavingsRate < 10:
		insights = append(insights, &entity.Insight{
			Type:    entity.InsightTypeWarning,
			Title:   "Low Savings Rate",
			Message: fmt.Sprintf("You are only saving %.1f%% of your income. Aim for at least 10%%.", snapshot.SavingsRate),
			Icon:    "trending-down",
		})
	case snapshot.SavingsRate <= 0:
		insights = append(insights, &entity.Insight{
			Type:    entity.InsightTypeNegative,
			Title:   "Spending Exceeds Income",
			Message: "You spent more than you earned this month.",
			Icon:    "alert-circle",
		})
	}

	if snapshot.OverBudgetCount > 0 {
		insights = append(insights, &entity.Insight{
			Type:    entity.InsightTypeWarning,
			Title:   "Budgets Over Limit",
			Message: fmt.Sprintf("%d of your budgets are over their limit.", snapshot.OverBudgetCount),
			Icon:    "alert-triangle",
		})
	}

	if snapshot.TopCategoryShare > 40 && snapshot.TopCategoryName != "" {
		insights = append(insights, &entity.Insight{
			Type:    entity.InsightTypeInfo,
			Title:   "Concentrated Spending",
			Message: fmt.Sprintf("%s accounts for %.1f%% of your spending.", snapshot.TopCategoryName, snapshot.TopCategoryShare),
			Icon:    "pie-chart",
		})
	}

	if snapshot.AvgTransactionsPerDay > 5 {
		insights = append(insights, &entity.Insight{
			Type:    entity.InsightTypeInfo,
			Title:   "Frequent Transactions",
			Message: fmt.Sprintf("You average %.1f transactions per day.", snapshot.AvgTransactionsPerDay),
			Icon:    "activity",
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Type.Weight() > insights[j].Type.Weight()
	})

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}
