// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// HealthFactorResponse represents one scored factor of the health score.
type HealthFactorResponse struct {
	Name      string `json:"name"`
	Points    int    `json:"points"`
	MaxPoints int    `json:"max_points"`
}

// RecommendationResponse represents one recommendation attached to the health score.
type RecommendationResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// HealthScoreResponse represents the composite health score in API responses.
type HealthScoreResponse struct {
	Score           int                      `json:"score"`
	Grade           string                   `json:"grade"`
	Factors         []HealthFactorResponse   `json:"factors"`
	Recommendations []RecommendationResponse `json:"recommendations"`
}

// TrendPointResponse represents one month of the budget trend series.
type TrendPointResponse struct {
	Month       string  `json:"month"`
	PeriodLabel string  `json:"period_label"`
	Budgeted    string  `json:"budgeted"`
	Spent       string  `json:"spent"`
	Saved       string  `json:"saved"`
	SavingsRate float64 `json:"savings_rate"`
}

// TrendListResponse represents the response for budget trends.
type TrendListResponse struct {
	Trends []TrendPointResponse `json:"trends"`
}

// InsightResponse represents a single insight in API responses.
type InsightResponse struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

// InsightListResponse represents the response for insights.
type InsightListResponse struct {
	Insights []InsightResponse `json:"insights"`
}

// ToHealthScoreResponse converts a HealthScore entity to its DTO.
func ToHealthScoreResponse(score *entity.HealthScore) HealthScoreResponse {
	factors := make([]HealthFactorResponse, len(score.Factors))
	for i, f := range score.Factors {
		factors[i] = HealthFactorResponse{
			Name:      f.Name,
			Points:    f.Points,
			MaxPoints: f.MaxPoints,
		}
	}

	recommendations := make([]RecommendationResponse, len(score.Recommendations))
	for i, r := range score.Recommendations {
		recommendations[i] = RecommendationResponse{
			Title:       r.Title,
			Description: r.Description,
			Action:      r.Action,
		}
	}

	return HealthScoreResponse{
		Score:           score.Score,
		Grade:           score.Grade,
		Factors:         factors,
		Recommendations: recommendations,
	}
}

// ToTrendListResponse converts a list of TrendPoint to its DTO.
func ToTrendListResponse(trends []*entity.TrendPoint) TrendListResponse {
	responses := make([]TrendPointResponse, len(trends))
	for i, t := range trends {
		responses[i] = TrendPointResponse{
			Month:       t.Month.Format("2006-01"),
			PeriodLabel: t.PeriodLabel,
			Budgeted:    t.Budgeted.StringFixed(2),
			Spent:       t.Spent.StringFixed(2),
			Saved:       t.Saved.StringFixed(2),
			SavingsRate: t.SavingsRate,
		}
	}
	return TrendListResponse{
		Trends: responses,
	}
}

// ToInsightListResponse converts a list of Insight to its DTO.
func ToInsightListResponse(insights []*entity.Insight) InsightListResponse {
	responses := make([]InsightResponse, len(insights))
	for i, ins := range insights {
		responses[i] = InsightResponse{
			Type:    string(ins.Type),
			Title:   ins.Title,
			Message: ins.Message,
			Icon:    ins.Icon,
		}
	}
	return InsightListResponse{
		Insights: responses,
	}
}
