package models

import "github.com/shopspring/decimal"

// Payment records money received from a student for a given fee type.
type Payment struct {
	ID            int64           `json:"id"`
	StudentID     int64           `json:"student_id" validate:"required"`
	SchoolYearID  int64           `json:"school_year_id" validate:"required"`
	PaymentTypeID int64           `json:"payment_type_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"payment_date" validate:"required,datetime=2006-01-02"`
	Reference     string          `json:"reference"`
	UserID        int64           `json:"user_id" validate:"required"`
	IsDeleted     bool            `json:"is_deleted"`

	Student     *Student     `json:"student,omitempty"`
	PaymentType *PaymentType `json:"payment_type,omitempty"`
}
