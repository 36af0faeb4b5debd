package models

import "github.com/shopspring/decimal"

// Cash ledger entry types. Entrée is money coming in, Sortie money going out.
const (
	EntryTypeIn  = "Entrée"
	EntryTypeOut = "Sortie"
)

// CashLedgerEntry is a single cash movement. The ledger is the source of
// truth for the cash balance; entries are only written by the ledger engine
// (expense and staff payment mirroring, manual entries) and the dataset
// loader.
type CashLedgerEntry struct {
	ID           int64           `json:"id"`
	SchoolYearID int64           `json:"school_year_id" validate:"required"`
	Date         string          `json:"date" validate:"required,datetime=2006-01-02"`
	Type         string          `json:"type" validate:"required,oneof=Entrée Sortie"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	UserID       int64           `json:"user_id" validate:"required"`
	IsDeleted    bool            `json:"is_deleted"`
}
