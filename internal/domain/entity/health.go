// Package entity defines the core business entities for the domain layer.
package entity

// HealthFactor is one independently-scored input to the composite health score.
type HealthFactor struct {
	Name      string
	Points    int
	MaxPoints int
}

// Recommendation is an actionable suggestion attached to a weak health factor.
type Recommendation struct {
	Title       string
	Description string
	Action      string
}

// HealthScore is the composite 0-100 financial health result.
type HealthScore struct {
	Score           int
	Grade           string
	Factors         []HealthFactor
	Recommendations []Recommendation
}

// AggregateFinancials bundles the pre-computed inputs to the health rubric.
// Callers assemble it from budget spending results and the transaction and
// account collaborators.
type AggregateFinancials struct {
	SavingsRate      float64 // percent of income kept, may be negative
	BudgetsOnTrack   int     // current budgets not over limit
	BudgetsTotal     int     // all current budgets
	TopCategoryShare float64 // top category's percent of total expenses
	HasExpenses      bool    // false when there is no expense data at all
	AccountCount     int     // distinct active accounts
	TransactionCount int     // total tracked transactions
}
