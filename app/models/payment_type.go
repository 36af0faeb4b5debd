package models

import "github.com/shopspring/decimal"

// PaymentType is a fee category with a reference amount. AmountDefined is a
// default shown to the operator, not a constraint on Payment.Amount.
type PaymentType struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	AmountDefined decimal.Decimal `json:"amount_defined"`
	IsDeleted     bool            `json:"is_deleted"`
}
