package health

import (
	"testing"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

func TestCalculateHealthScore(t *testing.T) {
	t.Run("strong financials earn the top grade", func(t *testing.T) {
		score := CalculateHealthScore(entity.AggregateFinancials{
			SavingsRate:      25,
			BudgetsOnTrack:   2,
			BudgetsTotal:     2,
			TopCategoryShare: 35,
			HasExpenses:      true,
			AccountCount:     3,
			TransactionCount: 60,
		})

		if score.Score != 95 {
			t.Errorf("expected score 95, got %d", score.Score)
		}
		if score.Grade != "A+" {
			t.Errorf("expected grade A+, got %s", score.Grade)
		}
	})

	t.Run("score always equals the sum of factor points", func(t *testing.T) {
		score := CalculateHealthScore(entity.AggregateFinancials{
			SavingsRate:      12,
			BudgetsOnTrack:   1,
			BudgetsTotal:     3,
			TopCategoryShare: 60,
			HasExpenses:      true,
			AccountCount:     1,
			TransactionCount: 15,
		})

		sum := 0
		for _, f := range score.Factors {
			sum += f.Points
		}
		if score.Score != sum {
			t.Errorf("expected score %d to equal factor sum %d", score.Score, sum)
		}
	})

	t.Run("empty financials score the floor without panicking", func(t *testing.T) {
		score := CalculateHealthScore(entity.AggregateFinancials{})

		// Account count never scores zero, so the floor is 5.
		if score.Score != 5 {
			t.Errorf("expected floor score 5, got %d", score.Score)
		}
		if score.Grade != "F" {
			t.Errorf("expected grade F, got %s", score.Grade)
		}
	})

	t.Run("no budgets zeroes adherence and recommends creating budgets", func(t *testing.T) {
		score := CalculateHealthScore(entity.AggregateFinancials{
			SavingsRate:      25,
			BudgetsTotal:     0,
			TopCategoryShare: 20,
			HasExpenses:      true,
			AccountCount:     3,
			TransactionCount: 60,
		})

		var adherence entity.HealthFactor
		for _, f := range score.Factors {
			if f.Name == FactorBudgetAdherence {
				adherence = f
			}
		}
		if adherence.Points != 0 {
			t.Errorf("expected zero adherence points with no budgets, got %d", adherence.Points)
		}

		found := false
		for _, r := range score.Recommendations {
			if r.Title == "No Budgets Set" {
				found = true
			}
		}
		if !found {
			t.Error("expected a No Budgets Set recommendation")
		}
	})

	t.Run("recommendations are capped at three and sorted weakest first", func(t *testing.T) {
		score := CalculateHealthScore(entity.AggregateFinancials{
			SavingsRate:      0,
			BudgetsOnTrack:   0,
			BudgetsTotal:     5,
			TopCategoryShare: 80,
			HasExpenses:      true,
			AccountCount:     1,
			TransactionCount: 2,
		})

		if len(score.Recommendations) != 3 {
			t.Fatalf("expected three recommendations, got %d", len(score.Recommendations))
		}
		// Savings rate and transaction volume both score 0 of their max;
		// savings rate comes first by factor order.
		if score.Recommendations[0].Title != "Boost Your Savings Rate" {
			t.Errorf("expected savings recommendation first, got %q", score.Recommendations[0].Title)
		}
	})

	t.Run("healthy factors produce no recommendations", func(t *testing.T) {
		score := CalculateHealthScore(entity.AggregateFinancials{
			SavingsRate:      30,
			BudgetsOnTrack:   4,
			BudgetsTotal:     4,
			TopCategoryShare: 25,
			HasExpenses:      true,
			AccountCount:     4,
			TransactionCount: 100,
		})

		if len(score.Recommendations) != 0 {
			t.Errorf("expected no recommendations for a perfect score, got %d", len(score.Recommendations))
		}
	})

	t.Run("grade bands cover the whole scale", func(t *testing.T) {
		cases := []struct {
			score int
			grade string
		}{
			{95, "A+"}, {90, "A+"}, {85, "A"}, {75, "B"}, {65, "C"}, {55, "D"}, {40, "F"},
		}
		for _, c := range cases {
			if got := gradeFor(c.score); got != c.grade {
				t.Errorf("score %d: expected grade %s, got %s", c.score, c.grade, got)
			}
		}
	})

	t.Run("no expenses zeroes the concentration factor", func(t *testing.T) {
		score := CalculateHealthScore(entity.AggregateFinancials{
			HasExpenses: false,
			AccountCount: 1,
		})
		for _, f := range score.Factors {
			if f.Name == FactorSpendingConcentration && f.Points != 0 {
				t.Errorf("expected zero concentration points without expenses, got %d", f.Points)
			}
		}
	})
}

func TestFactorBands(t *testing.T) {
	t.Run("savings rate bands", func(t *testing.T) {
		cases := []struct {
			rate   float64
			points int
		}{
			{25, 25}, {20, 25}, {15, 15}, {10, 15}, {7, 10}, {5, 10}, {4, 0}, {-10, 0},
		}
		for _, c := range cases {
			if got := savingsRatePoints(c.rate); got != c.points {
				t.Errorf("rate %.1f: expected %d points, got %d", c.rate, c.points, got)
			}
		}
	})

	t.Run("adherence bands", func(t *testing.T) {
		cases := []struct {
			onTrack, total, points int
		}{
			{0, 0, 0}, {10, 10, 25}, {9, 10, 25}, {8, 10, 20}, {7, 10, 20}, {5, 10, 15}, {4, 10, 5},
		}
		for _, c := range cases {
			if got := adherencePoints(c.onTrack, c.total); got != c.points {
				t.Errorf("%d of %d on track: expected %d points, got %d", c.onTrack, c.total, c.points, got)
			}
		}
	})

	t.Run("volume bands", func(t *testing.T) {
		cases := []struct {
			count, points int
		}{
			{60, 15}, {50, 15}, {30, 10}, {20, 10}, {15, 5}, {10, 5}, {9, 0}, {0, 0},
		}
		for _, c := range cases {
			if got := volumePoints(c.count); got != c.points {
				t.Errorf("count %d: expected %d points, got %d", c.count, c.points, got)
			}
		}
	})
}
