// Package entity defines the core business entities for the domain layer.
package entity

// InsightType classifies the tone of an insight.
type InsightType string

const (
	InsightTypePositive InsightType = "positive"
	InsightTypeWarning  InsightType = "warning"
	InsightTypeNegative InsightType = "negative"
	InsightTypeInfo     InsightType = "info"
)

// Weight returns the ranking weight of an insight type. Higher weights
// surface first when the insight list is truncated.
func (t InsightType) Weight() int {
	switch t {
	case InsightTypeNegative:
		return 4
	case InsightTypeWarning:
		return 3
	case InsightTypePositive:
		return 2
	case InsightTypeInfo:
		return 1
	default:
		return 0
	}
}

// Insight is a short natural-language observation derived from the
// user's budgets and transactions.
type Insight struct {
	Type    InsightType
	Title   string
	Message string
	Icon    string
}

// FinancialSnapshot bundles the pre-computed inputs to insight generation.
type FinancialSnapshot struct {
	SavingsRate           float64
	OverBudgetCount       int
	TopCategoryName       string
	TopCategoryShare      float64 // percent of total expenses
	AvgTransactionsPerDay float64
}
