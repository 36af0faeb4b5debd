// Package reports contains read-only queries that compose repository data
// into dashboard summaries and financial reports. Nothing here writes.
package reports

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// DashboardSummary is the landing-screen overview. CashBalance is derived
// from payment and expense sums, not from the cash ledger.
type DashboardSummary struct {
	TotalStudents        int             `json:"total_students"`
	TotalPayments        int             `json:"total_payments"`
	TotalExpenses        int             `json:"total_expenses"`
	AmountPayments       decimal.Decimal `json:"amount_payments"`
	AmountExpenses       decimal.Decimal `json:"amount_expenses"`
	CashBalance          decimal.Decimal `json:"cash_balance"`
	ActiveSchoolYear     string          `json:"active_school_year"`
	StudentsPerClassroom map[string]int  `json:"students_per_classroom"`
}

// GetDashboardSummary returns counts and sums over active rows. An empty
// store yields zeroes, "N/A" and an empty classroom map, never an error.
func GetDashboardSummary(db *sql.DB) (*DashboardSummary, error) {
	summary := &DashboardSummary{
		ActiveSchoolYear:     "N/A",
		StudentsPerClassroom: map[string]int{},
	}

	err := db.QueryRow(`SELECT COUNT(*) FROM students WHERE is_deleted = 0`).Scan(&summary.TotalStudents)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM payments WHERE is_deleted = 0`).
		Scan(&summary.TotalPayments, &summary.AmountPayments)
	if err != nil {
		return nil, err
	}

	err = db.QueryRow(`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM expenses WHERE is_deleted = 0`).
		Scan(&summary.TotalExpenses, &summary.AmountExpenses)
	if err != nil {
		return nil, err
	}

	summary.CashBalance = summary.AmountPayments.Sub(summary.AmountExpenses)

	var yearName sql.NullString
	err = db.QueryRow(`SELECT name FROM school_years
					   WHERE is_active = 1 AND is_deleted = 0
					   ORDER BY start_date DESC LIMIT 1`).Scan(&yearName)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}
	if yearName.Valid {
		summary.ActiveSchoolYear = yearName.String
	}

	// Classrooms with no active students are omitted from the map.
	rows, err := db.Query(`SELECT c.name, COUNT(s.id)
						   FROM classrooms c
						   JOIN enrollments e ON e.classroom_id = c.id AND e.is_deleted = 0
						   JOIN students s ON e.student_id = s.id AND s.is_deleted = 0
						   WHERE c.is_deleted = 0
						   GROUP BY c.id, c.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		summary.StudentsPerClassroom[name] = count
	}
	return summary, rows.Err()
}
