// Package health contains financial health scoring use cases.
package health

import (
	"sort"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// Factor names reported in the health score breakdown.
const (
	FactorSavingsRate           = "Savings Rate"
	FactorBudgetAdherence       = "Budget Adherence"
	FactorSpendingConcentration = "Spending Concentration"
	FactorAccountCount          = "Account Count"
	FactorTransactionVolume     = "Transaction Volume"
)

// maxRecommendations caps how many recommendations a health score carries.
const maxRecommendations = 3

// CalculateHealthScore combines the aggregate financials into a weighted
// 0-100 score with a letter grade and up to three recommendations.
// Pure function of its input.
func CalculateHealthScore(fin entity.AggregateFinancials) *entity.HealthScore {
	factors := []entity.HealthFactor{
		{Name: FactorSavingsRate, Points: savingsRatePoints(fin.SavingsRate), MaxPoints: 25},
		{Name: FactorBudgetAdherence, Points: adherencePoints(fin.BudgetsOnTrack, fin.BudgetsTotal), MaxPoints: 25},
		{Name: FactorSpendingConcentration, Points: concentrationPoints(fin.TopCategoryShare, fin.HasExpenses), MaxPoints: 20},
		{Name: FactorAccountCount, Points: accountPoints(fin.AccountCount), MaxPoints: 15},
		{Name: FactorTransactionVolume, Points: volumePoints(fin.TransactionCount), MaxPoints: 15},
	}

	total := 0
	for _, f := range factors {
		total += f.Points
	}

	return &entity.HealthScore{
		Score:           total,
		Grade:           gradeFor(total),
		Factors:         factors,
		Recommendations: buildRecommendations(factors, fin),
	}
}

func savingsRatePoints(rate float64) int {
	switch {
	case rate >= 20:
		return 25
	case rate >= 10:
		return 15
	case rate >= 5:
		return 10
	default:
		return 0
	}
}

func adherencePoints(onTrack, total int) int {
	if total == 0 {
		return 0
	}
	pct := 100 * float64(onTrack) / float64(total)
	switch {
	case pct >= 90:
		return 25
	case pct >= 70:
		return 20
	case pct >= 50:
		return 15
	default:
		return 5
	}
}

func concentrationPoints(topShare float64, hasExpenses bool) int {
	if !hasExpenses {
		return 0
	}
	switch {
	case topShare <= 30:
		return 20
	case topShare <= 50:
		return 15
	default:
		return 5
	}
}

func accountPoints(count int) int {
	switch {
	case count >= 3:
		return 15
	case count >= 2:
		return 10
	default:
		return 5
	}
}

func volumePoints(count int) int {
	switch {
	case count >= 50:
		return 15
	case count >= 20:
		return 10
	case count >= 10:
		return 5
	default:
		return 0
	}
}

func gradeFor(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}

// buildRecommendations emits one recommendation per factor scoring below 70%
// of its maximum, keeping the three lowest-scoring factors.
func buildRecommendations(factors []entity.HealthFactor, fin entity.AggregateFinancials) []entity.Recommendation {
	type weak struct {
		factor   entity.HealthFactor
		fraction float64
		order    int
	}

	var weaks []weak
	for i, f := range factors {
		fraction := float64(f.Points) / float64(f.MaxPoints)
		if fraction < 0.7 {
			weaks = append(weaks, weak{factor: f, fraction: fraction, order: i})
		}
	}

	sort.SliceStable(weaks, func(i, j int) bool {
		if weaks[i].fraction != weaks[j].fraction {
			return weaks[i].fraction < weaks[j].fraction
		}
		return weaks[i].order < weaks[j].order
	})

	if len(weaks) > maxRecommendations {
		weaks = weaks[:maxRecommendations]
	}

	recommendations := make([]entity.Recommendation, 0, len(weaks))
	for _, w := range weaks {
		recommendations = append(recommendations, recommendationFor(w.factor.Name, fin))
	}
	return recommendations
}

func recommendationFor(factorName string, fin entity.AggregateFinancials) entity.Recommendation {
	switch factorName {
	case FactorSavingsRate:
		return entity.Recommendation{
			Title:       "Boost Your Savings Rate",
			Description: "You are keeping less than a fifth of your income.",
			Action:      "Set aside a fixed amount each payday before spending.",
		}
	case FactorBudgetAdherence:
		if fin.BudgetsTotal == 0 {
			return entity.Recommendation{
				Title:       "No Budgets Set",
				Description: "You have no budgets for the current period.",
				Action:      "Create budgets for your biggest spending categories.",
			}
		}
		return entity.Recommendation{
			Title:       "Stay Within Your Budgets",
			Description: "Several of your budgets are over their limits.",
			Action:      "Review over-limit budgets and adjust spending or raise the limits.",
		}
	case FactorSpendingConcentration:
		return entity.Recommendation{
			Title:       "Diversify Your Spending",
			Description: "A single category takes a large share of your expenses.",
			Action:      "Watch your top spending category for cutback opportunities.",
		}
	case FactorAccountCount:
		return entity.Recommendation{
			Title:       "Add Your Accounts",
			Description: "You are tracking only a few accounts.",
			Action:      "Connect checking, savings, and credit accounts for a fuller picture.",
		}
	default:
		return entity.Recommendation{
			Title:       "Track More Transactions",
			Description: "Too few transactions are recorded to assess your habits.",
			Action:      "Record transactions regularly to improve accuracy.",
		}
	}
}
