// Package ledger guarantees that every expense and staff payment is mirrored
// by exactly one cash ledger entry, written in the same transaction, and
// computes balances from the ledger alone.
package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Victoire243/iSchool-sub000/app/database"
	"github.com/Victoire243/iSchool-sub000/app/models"
)

// ErrValidation marks input rejected before any write: non-positive amounts,
// malformed dates, missing fields, unknown referenced rows.
var ErrValidation = errors.New("validation failed")

type Engine struct {
	db       *sql.DB
	validate *validator.Validate
}

func NewEngine(db *sql.DB) *Engine {
	return &Engine{
		db:       db,
		validate: validator.New(),
	}
}

// ExpenseInput describes a new expense.
type ExpenseInput struct {
	SchoolYearID int64  `validate:"required"`
	ExpenseDate  string `validate:"required,datetime=2006-01-02"`
	Description  string `validate:"required"`
	Amount       decimal.Decimal
	UserID       int64 `validate:"required"`
}

// StaffPaymentInput describes a new salary disbursement.
type StaffPaymentInput struct {
	StaffID      int64 `validate:"required"`
	SchoolYearID int64 `validate:"required"`
	Amount       decimal.Decimal
	PaymentDate  string `validate:"required,datetime=2006-01-02"`
	UserID       int64  `validate:"required"`
}

// ManualEntryInput describes an operator-entered cash movement, independent
// of any expense or staff payment.
type ManualEntryInput struct {
	SchoolYearID int64  `validate:"required"`
	Date         string `validate:"required,datetime=2006-01-02"`
	Type         string `validate:"required,oneof=Entrée Sortie"`
	Description  string `validate:"required"`
	Amount       decimal.Decimal
	UserID       int64 `validate:"required"`
}

func (e *Engine) check(input any, amount decimal.Decimal) error {
	if err := e.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if amount.Cmp(decimal.Zero) <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	return nil
}

// CreateExpense inserts the expense and its mirrored Sortie ledger entry as
// one transaction; either both rows commit or neither does.
func (e *Engine) CreateExpense(input ExpenseInput) (*models.Expense, error) {
	if err := e.check(input, input.Amount); err != nil {
		return nil, err
	}

	tx, err := e.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	expense := &models.Expense{
		SchoolYearID: input.SchoolYearID,
		ExpenseDate:  input.ExpenseDate,
		Description:  input.Description,
		Amount:       input.Amount,
		UserID:       input.UserID,
	}
	err = tx.QueryRow(
		`INSERT INTO expenses (school_year_id, expense_date, description, amount, user_id)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		expense.SchoolYearID, expense.ExpenseDate, expense.Description, expense.Amount, expense.UserID,
	).Scan(&expense.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert expense: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO cash_ledger_entries (school_year_id, date, type, description, amount, user_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.SchoolYearID, expense.ExpenseDate, models.EntryTypeOut,
		"Expense: "+expense.Description, expense.Amount, expense.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mirror expense into ledger: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	if err := database.LogAction(e.db, expense.UserID, "create", "expenses", expense.ID, expense.Description); err != nil {
		log.Printf("Failed to audit expense creation: %v", err)
	}
	return expense, nil
}

// CreateStaffPayment inserts the staff payment and its mirrored Sortie
// ledger entry as one transaction. The staff name is resolved now, not by a
// later join, so the ledger description survives renames.
func (e *Engine) CreateStaffPayment(input StaffPaymentInput) (*models.StaffPayment, error) {
	if err := e.check(input, input.Amount); err != nil {
		return nil, err
	}

	tx, err := e.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var firstName, lastName string
	err = tx.QueryRow(
		`SELECT first_name, last_name FROM staff WHERE id = ? AND is_deleted = 0`,
		input.StaffID,
	).Scan(&firstName, &lastName)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: unknown staff %d", ErrValidation, input.StaffID)
	}
	if err != nil {
		return nil, err
	}

	payment := &models.StaffPayment{
		StaffID:      input.StaffID,
		SchoolYearID: input.SchoolYearID,
		Amount:       input.Amount,
		PaymentDate:  input.PaymentDate,
		UserID:       input.UserID,
	}
	err = tx.QueryRow(
		`INSERT INTO staff_payments (staff_id, school_year_id, amount, payment_date, user_id)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		payment.StaffID, payment.SchoolYearID, payment.Amount, payment.PaymentDate, payment.UserID,
	).Scan(&payment.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert staff payment: %w", err)
	}

	description := fmt.Sprintf("Staff payment: %s %s", firstName, lastName)
	_, err = tx.Exec(
		`INSERT INTO cash_ledger_entries (school_year_id, date, type, description, amount, user_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		payment.SchoolYearID, payment.PaymentDate, models.EntryTypeOut,
		description, payment.Amount, payment.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mirror staff payment into ledger: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	if err := database.LogAction(e.db, payment.UserID, "create", "staff_payments", payment.ID, description); err != nil {
		log.Printf("Failed to audit staff payment creation: %v", err)
	}
	return payment, nil
}

// CreateManualEntry records a free-form cash movement.
func (e *Engine) CreateManualEntry(input ManualEntryInput) (*models.CashLedgerEntry, error) {
	if err := e.check(input, input.Amount); err != nil {
		return nil, err
	}

	entry := &models.CashLedgerEntry{
		SchoolYearID: input.SchoolYearID,
		Date:         input.Date,
		Type:         input.Type,
		Description:  input.Description,
		Amount:       input.Amount,
		UserID:       input.UserID,
	}
	err := e.db.QueryRow(
		`INSERT INTO cash_ledger_entries (school_year_id, date, type, description, amount, user_id)
		 VALUES (?, ?, ?, ?, ?, ?) RETURNING id`,
		entry.SchoolYearID, entry.Date, entry.Type, entry.Description, entry.Amount, entry.UserID,
	).Scan(&entry.ID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Balance summarizes the active ledger rows.
type Balance struct {
	TotalIn  decimal.Decimal `json:"total_in"`
	TotalOut decimal.Decimal `json:"total_out"`
	Balance  decimal.Decimal `json:"balance"`
}

// Balance sums non-deleted ledger entries by type, optionally scoped to one
// school year. Missing rows count as zero, never null.
func (e *Engine) Balance(schoolYearID *int64) (*Balance, error) {
	totalIn, err := e.sumEntries(models.EntryTypeIn, schoolYearID)
	if err != nil {
		return nil, err
	}
	totalOut, err := e.sumEntries(models.EntryTypeOut, schoolYearID)
	if err != nil {
		return nil, err
	}
	return &Balance{
		TotalIn:  totalIn,
		TotalOut: totalOut,
		Balance:  totalIn.Sub(totalOut),
	}, nil
}

func (e *Engine) sumEntries(entryType string, schoolYearID *int64) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM cash_ledger_entries
			  WHERE type = ? AND is_deleted = 0`
	args := []any{entryType}
	if schoolYearID != nil {
		query += ` AND school_year_id = ?`
		args = append(args, *schoolYearID)
	}

	var total decimal.Decimal
	if err := e.db.QueryRow(query, args...).Scan(&total); err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// MonthlyFlow is the in/out totals of one YYYY-MM bucket.
type MonthlyFlow struct {
	Month    string          `json:"month"`
	TotalIn  decimal.Decimal `json:"total_in"`
	TotalOut decimal.Decimal `json:"total_out"`
}

// Statistics is the cash register overview: overall balance plus monthly
// buckets, oldest first.
type Statistics struct {
	Balance Balance       `json:"balance"`
	Months  []MonthlyFlow `json:"months"`
}

func (e *Engine) CashRegisterStatistics(schoolYearID *int64) (*Statistics, error) {
	balance, err := e.Balance(schoolYearID)
	if err != nil {
		return nil, err
	}

	query := `SELECT substr(date, 1, 7) AS month,
			  COALESCE(SUM(CASE WHEN type = 'Entrée' THEN amount ELSE 0 END), 0),
			  COALESCE(SUM(CASE WHEN type = 'Sortie' THEN amount ELSE 0 END), 0)
			  FROM cash_ledger_entries
			  WHERE is_deleted = 0`
	args := []any{}
	if schoolYearID != nil {
		query += ` AND school_year_id = ?`
		args = append(args, *schoolYearID)
	}
	query += ` GROUP BY month ORDER BY month`

	rows, err := e.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	months := []MonthlyFlow{}
	for rows.Next() {
		var flow MonthlyFlow
		if err := rows.Scan(&flow.Month, &flow.TotalIn, &flow.TotalOut); err != nil {
			return nil, err
		}
		months = append(months, flow)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &Statistics{Balance: *balance, Months: months}, nil
}
