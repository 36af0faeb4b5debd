package reports

import (
	"database/sql"

	"github.com/shopspring/decimal"

	"github.com/Victoire243/iSchool-sub000/app/database"
	"github.com/Victoire243/iSchool-sub000/app/models"
)

// DateRange is an optional inclusive [Start, End] filter. Dates are ISO
// YYYY-MM-DD text, so plain string comparison orders them correctly.
type DateRange struct {
	Start string
	End   string
}

// apply appends the range predicates for the given date column.
func (r DateRange) apply(query string, column string, args []any) (string, []any) {
	if r.Start != "" {
		query += ` AND ` + column + ` >= ?`
		args = append(args, r.Start)
	}
	if r.End != "" {
		query += ` AND ` + column + ` <= ?`
		args = append(args, r.End)
	}
	return query, args
}

// StudentStatement summarizes what one student has paid, active payments only.
type StudentStatement struct {
	StudentID    int64           `json:"student_id"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	PaymentCount int             `json:"payment_count"`
}

func GetStudentFinancialStatement(db *sql.DB, studentID int64) (*StudentStatement, error) {
	statement := &StudentStatement{StudentID: studentID}
	err := db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(amount), 0) FROM payments
		 WHERE student_id = ? AND is_deleted = 0`,
		studentID,
	).Scan(&statement.PaymentCount, &statement.TotalPaid)
	if err != nil {
		return nil, err
	}
	return statement, nil
}

// StudentTotal is one line of a per-classroom report.
type StudentTotal struct {
	StudentID    int64           `json:"student_id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	PaymentCount int             `json:"payment_count"`
}

// ClassroomReport sums payments per student for one classroom's roster in
// the active school year. A classroom with no matching rows yields an empty
// report, not a failure.
type ClassroomReport struct {
	ClassroomID int64           `json:"classroom_id"`
	Students    []*StudentTotal `json:"students"`
	Total       decimal.Decimal `json:"total"`
}

func GetFinancialReportByClassroom(db *sql.DB, classroomID int64, dateRange DateRange) (*ClassroomReport, error) {
	report := &ClassroomReport{ClassroomID: classroomID, Students: []*StudentTotal{}, Total: decimal.Zero}

	year, err := database.GetActiveSchoolYear(db)
	if err != nil {
		return nil, err
	}
	if year == nil {
		return report, nil
	}

	query := `SELECT s.id, s.first_name, s.last_name,
			  COALESCE(SUM(p.amount), 0), COUNT(p.id)
			  FROM enrollments e
			  JOIN students s ON e.student_id = s.id AND s.is_deleted = 0
			  LEFT JOIN payments p ON p.student_id = s.id AND p.is_deleted = 0`
	args := []any{}
	query, args = dateRange.apply(query, "p.payment_date", args)
	query += ` WHERE e.classroom_id = ? AND e.school_year_id = ? AND e.is_deleted = 0
			  GROUP BY s.id, s.first_name, s.last_name
			  ORDER BY s.last_name, s.first_name`
	args = append(args, classroomID, year.ID)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		line := &StudentTotal{}
		err := rows.Scan(&line.StudentID, &line.FirstName, &line.LastName,
			&line.TotalPaid, &line.PaymentCount)
		if err != nil {
			return nil, err
		}
		report.Students = append(report.Students, line)
		report.Total = report.Total.Add(line.TotalPaid)
	}
	return report, rows.Err()
}

// StudentReport lists one student's payments within a date range.
type StudentReport struct {
	StudentID int64             `json:"student_id"`
	Payments  []*models.Payment `json:"payments"`
	Total     decimal.Decimal   `json:"total"`
}

func GetFinancialReportByStudent(db *sql.DB, studentID int64, dateRange DateRange) (*StudentReport, error) {
	query := `SELECT p.id, p.student_id, p.school_year_id, p.payment_type_id, p.amount,
			  p.payment_date, p.reference, p.user_id, p.is_deleted
			  FROM payments p
			  WHERE p.student_id = ? AND p.is_deleted = 0`
	args := []any{studentID}
	query, args = dateRange.apply(query, "p.payment_date", args)
	query += ` ORDER BY p.payment_date DESC, p.id DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := &StudentReport{StudentID: studentID, Payments: []*models.Payment{}, Total: decimal.Zero}
	for rows.Next() {
		payment := &models.Payment{}
		err := rows.Scan(&payment.ID, &payment.StudentID, &payment.SchoolYearID,
			&payment.PaymentTypeID, &payment.Amount, &payment.PaymentDate,
			&payment.Reference, &payment.UserID, &payment.IsDeleted)
		if err != nil {
			return nil, err
		}
		report.Payments = append(report.Payments, payment)
		report.Total = report.Total.Add(payment.Amount)
	}
	return report, rows.Err()
}

// SchoolReport is the whole-school financial picture for a date range.
type SchoolReport struct {
	TotalPayments      decimal.Decimal `json:"total_payments"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	TotalStaffPayments decimal.Decimal `json:"total_staff_payments"`
	Net                decimal.Decimal `json:"net"`
}

func GetSchoolFinancialReport(db *sql.DB, dateRange DateRange) (*SchoolReport, error) {
	report := &SchoolReport{}

	sums := []struct {
		table  string
		column string
		dest   *decimal.Decimal
	}{
		{"payments", "payment_date", &report.TotalPayments},
		{"expenses", "expense_date", &report.TotalExpenses},
		{"staff_payments", "payment_date", &report.TotalStaffPayments},
	}
	for _, s := range sums {
		query := `SELECT COALESCE(SUM(amount), 0) FROM ` + s.table + ` WHERE is_deleted = 0`
		args := []any{}
		query, args = dateRange.apply(query, s.column, args)
		if err := db.QueryRow(query, args...).Scan(s.dest); err != nil {
			return nil, err
		}
	}

	report.Net = report.TotalPayments.Sub(report.TotalExpenses).Sub(report.TotalStaffPayments)
	return report, nil
}

// CashRegisterReport lists ledger movements within a date range with their
// running totals.
type CashRegisterReport struct {
	Entries  []*models.CashLedgerEntry `json:"entries"`
	TotalIn  decimal.Decimal           `json:"total_in"`
	TotalOut decimal.Decimal           `json:"total_out"`
	Balance  decimal.Decimal           `json:"balance"`
}

func GetCashRegisterReport(db *sql.DB, dateRange DateRange) (*CashRegisterReport, error) {
	query := `SELECT l.id, l.school_year_id, l.date, l.type, l.description, l.amount, l.user_id, l.is_deleted
			  FROM cash_ledger_entries l
			  WHERE l.is_deleted = 0`
	args := []any{}
	query, args = dateRange.apply(query, "l.date", args)
	query += ` ORDER BY l.date DESC, l.id DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	report := &CashRegisterReport{
		Entries:  []*models.CashLedgerEntry{},
		TotalIn:  decimal.Zero,
		TotalOut: decimal.Zero,
	}
	for rows.Next() {
		entry := &models.CashLedgerEntry{}
		err := rows.Scan(&entry.ID, &entry.SchoolYearID, &entry.Date, &entry.Type,
			&entry.Description, &entry.Amount, &entry.UserID, &entry.IsDeleted)
		if err != nil {
			return nil, err
		}
		report.Entries = append(report.Entries, entry)
		if entry.Type == models.EntryTypeIn {
			report.TotalIn = report.TotalIn.Add(entry.Amount)
		} else {
			report.TotalOut = report.TotalOut.Add(entry.Amount)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	report.Balance = report.TotalIn.Sub(report.TotalOut)
	return report, nil
}
