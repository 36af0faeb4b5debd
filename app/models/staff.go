package models

import "github.com/shopspring/decimal"

// Staff represents a school employee.
type Staff struct {
	ID         int64           `json:"id"`
	FirstName  string          `json:"first_name" validate:"required"`
	LastName   string          `json:"last_name" validate:"required"`
	Position   string          `json:"position"`
	HireDate   string          `json:"hire_date" validate:"omitempty,datetime=2006-01-02"`
	SalaryBase decimal.Decimal `json:"salary_base"`
	IsDeleted  bool            `json:"is_deleted"`
}

// StaffPayment records a salary disbursement. Creating one always creates a
// mirrored Sortie entry in the cash ledger, with the staff name resolved at
// creation time so the description survives later renames.
type StaffPayment struct {
	ID           int64           `json:"id"`
	StaffID      int64           `json:"staff_id" validate:"required"`
	SchoolYearID int64           `json:"school_year_id" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentDate  string          `json:"payment_date" validate:"required,datetime=2006-01-02"`
	UserID       int64           `json:"user_id" validate:"required"`
	IsDeleted    bool            `json:"is_deleted"`

	Staff *Staff `json:"staff,omitempty"`
}
