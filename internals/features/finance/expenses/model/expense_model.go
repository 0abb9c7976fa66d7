package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseModel struct {
	ExpenseID        uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"expense_id"`
	ExpenseLibraryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"expense_library_id"`
	ExpenseTitle     string          `gorm:"type:varchar(150);not null" json:"expense_title"`
	ExpenseCategory  string          `gorm:"type:varchar(50)" json:"expense_category"`
	ExpenseAmount    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"expense_amount"`
	ExpenseSpentAt   time.Time       `gorm:"not null" json:"expense_spent_at"`
	ExpenseNote      *string         `gorm:"type:text" json:"expense_note,omitempty"`
	ExpenseCreatedAt time.Time       `gorm:"autoCreateTime" json:"expense_created_at"`
	ExpenseUpdatedAt time.Time       `gorm:"autoUpdateTime" json:"expense_updated_at"`
}

func (ExpenseModel) TableName() string { return "expenses" }
