// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Description     string          `gorm:"type:text"`
	Amount          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Period          string          `gorm:"type:varchar(20);not null;default:'month'"`
	StartDate       time.Time       `gorm:"type:date;not null;index"`
	EndDate         time.Time       `gorm:"type:date;not null;index"`
	CategoryIDs     pq.StringArray  `gorm:"type:uuid[]"` // empty = applies to all categories
	AlertPercentage float64         `gorm:"type:decimal(5,2);not null;default:80"`
	AlertEnabled    bool            `gorm:"not null;default:true"`
	IsActive        bool            `gorm:"not null;default:true;index"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`
	DeletedAt       gorm.DeletedAt  `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	scope := entity.AllCategories()
	if len(m.CategoryIDs) > 0 {
		ids := make([]uuid.UUID, 0, len(m.CategoryIDs))
		for _, raw := range m.CategoryIDs {
			if id, err := uuid.Parse(raw); err == nil {
				ids = append(ids, id)
			}
		}
		scope = entity.SpecificCategories(ids)
	}

	return &entity.Budget{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		Description:     m.Description,
		Amount:          m.Amount,
		Period:          entity.BudgetPeriod(m.Period),
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		Categories:      scope,
		AlertPercentage: m.AlertPercentage,
		AlertEnabled:    m.AlertEnabled,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	var deletedAt gorm.DeletedAt
	if budget.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *budget.DeletedAt, Valid: true}
	}

	categoryIDs := make(pq.StringArray, 0)
	for _, id := range budget.Categories.CategoryIDs() {
		categoryIDs = append(categoryIDs, id.String())
	}

	return &BudgetModel{
		ID:              budget.ID,
		UserID:          budget.UserID,
		Name:            budget.Name,
		Description:     budget.Description,
		Amount:          budget.Amount,
		Period:          string(budget.Period),
		StartDate:       budget.StartDate,
		EndDate:         budget.EndDate,
		CategoryIDs:     categoryIDs,
		AlertPercentage: budget.AlertPercentage,
		AlertEnabled:    budget.AlertEnabled,
		IsActive:        budget.IsActive,
		CreatedAt:       budget.CreatedAt,
		UpdatedAt:       budget.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}
