package models

import "github.com/shopspring/decimal"

// Expense represents a school expense. Creating one always creates a
// mirrored Sortie entry in the cash ledger.
type Expense struct {
	ID           int64           `json:"id"`
	SchoolYearID int64           `json:"school_year_id" validate:"required"`
	ExpenseDate  string          `json:"expense_date" validate:"required,datetime=2006-01-02"`
	Description  string          `json:"description" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
	UserID       int64           `json:"user_id" validate:"required"`
	IsDeleted    bool            `json:"is_deleted"`
}
