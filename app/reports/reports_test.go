package reports

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Victoire243/iSchool-sub000/app/database"
	"github.com/Victoire243/iSchool-sub000/app/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	store := database.NewStore(":memory:")
	db, err := store.DB()
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := database.CreateSchema(db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return db
}

// populate builds a small consistent school: one active year, two
// classrooms, three students (one soft-deleted), payments and an expense.
type school struct {
	yearID      int64
	classroomID int64
	emptyRoomID int64
	marieID     int64
	marcID      int64
	goneID      int64
	userID      int64
}

func populate(t *testing.T, db *sql.DB) *school {
	t.Helper()
	s := &school{}

	roleID, err := database.CreateRole(db, &models.Role{Name: "Admin"})
	if err != nil {
		t.Fatalf("CreateRole error: %v", err)
	}
	s.userID, err = database.CreateUser(db, &models.User{
		Username: "admin", Password: "dev", FullName: "Victoire Kabeya", RoleID: roleID,
	})
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}

	s.yearID, err = database.CreateSchoolYear(db, &models.SchoolYear{
		Name: "2024-2025", StartDate: "2024-09-01", EndDate: "2025-06-30", IsActive: true,
	})
	if err != nil {
		t.Fatalf("CreateSchoolYear error: %v", err)
	}

	s.classroomID, err = database.CreateClassroom(db, &models.Classroom{Name: "4ème Primaire", Level: "Primaire"})
	if err != nil {
		t.Fatalf("CreateClassroom error: %v", err)
	}
	s.emptyRoomID, err = database.CreateClassroom(db, &models.Classroom{Name: "8ème Secondaire", Level: "Secondaire"})
	if err != nil {
		t.Fatalf("CreateClassroom error: %v", err)
	}

	s.marieID, err = database.CreateStudent(db, &models.Student{FirstName: "Marie", LastName: "Dupont"})
	if err != nil {
		t.Fatalf("CreateStudent error: %v", err)
	}
	s.marcID, err = database.CreateStudent(db, &models.Student{FirstName: "Marc", LastName: "Kalonji"})
	if err != nil {
		t.Fatalf("CreateStudent error: %v", err)
	}
	s.goneID, err = database.CreateStudent(db, &models.Student{FirstName: "Serge", LastName: "Kazadi"})
	if err != nil {
		t.Fatalf("CreateStudent error: %v", err)
	}

	for _, studentID := range []int64{s.marieID, s.marcID, s.goneID} {
		if _, err := database.CreateEnrollment(db, &models.Enrollment{
			StudentID: studentID, ClassroomID: s.classroomID, SchoolYearID: s.yearID,
		}); err != nil {
			t.Fatalf("CreateEnrollment error: %v", err)
		}
	}
	if _, err := database.DeleteStudent(db, s.goneID); err != nil {
		t.Fatalf("DeleteStudent error: %v", err)
	}

	typeID, err := database.CreatePaymentType(db, &models.PaymentType{
		Name: "Frais de scolarité", AmountDefined: decimal.NewFromInt(50),
	})
	if err != nil {
		t.Fatalf("CreatePaymentType error: %v", err)
	}

	payments := []*models.Payment{
		{StudentID: s.marieID, SchoolYearID: s.yearID, PaymentTypeID: typeID, Amount: decimal.NewFromInt(50), PaymentDate: "2024-09-15", UserID: s.userID},
		{StudentID: s.marieID, SchoolYearID: s.yearID, PaymentTypeID: typeID, Amount: decimal.NewFromInt(50), PaymentDate: "2024-10-15", UserID: s.userID},
		{StudentID: s.marcID, SchoolYearID: s.yearID, PaymentTypeID: typeID, Amount: decimal.NewFromInt(30), PaymentDate: "2024-10-20", UserID: s.userID},
	}
	for _, payment := range payments {
		if _, err := database.CreatePayment(db, payment); err != nil {
			t.Fatalf("CreatePayment error: %v", err)
		}
	}

	_, err = db.Exec(
		`INSERT INTO expenses (school_year_id, expense_date, description, amount, user_id) VALUES (?, ?, ?, ?, ?)`,
		s.yearID, "2024-10-01", "Achat de craies", decimal.NewFromInt(40), s.userID,
	)
	if err != nil {
		t.Fatalf("insert expense error: %v", err)
	}

	return s
}

func TestDashboardSummaryEmptyStore(t *testing.T) {
	db := openTestDB(t)

	summary, err := GetDashboardSummary(db)
	if err != nil {
		t.Fatalf("GetDashboardSummary error: %v", err)
	}
	if summary.TotalStudents != 0 || summary.TotalPayments != 0 || summary.TotalExpenses != 0 {
		t.Fatalf("empty store counts = %d/%d/%d, want all zero",
			summary.TotalStudents, summary.TotalPayments, summary.TotalExpenses)
	}
	if !summary.CashBalance.Equal(decimal.Zero) {
		t.Fatalf("empty store cash balance = %s, want 0", summary.CashBalance)
	}
	if summary.ActiveSchoolYear != "N/A" {
		t.Fatalf("empty store active school year = %q, want N/A", summary.ActiveSchoolYear)
	}
	if len(summary.StudentsPerClassroom) != 0 {
		t.Fatalf("empty store classroom map = %v, want empty", summary.StudentsPerClassroom)
	}
}

func TestDashboardSummary(t *testing.T) {
	db := openTestDB(t)
	populate(t, db)

	summary, err := GetDashboardSummary(db)
	if err != nil {
		t.Fatalf("GetDashboardSummary error: %v", err)
	}

	if summary.TotalStudents != 2 {
		t.Fatalf("TotalStudents = %d, want 2 (soft-deleted student excluded)", summary.TotalStudents)
	}
	if summary.TotalPayments != 3 || summary.TotalExpenses != 1 {
		t.Fatalf("payments/expenses = %d/%d, want 3/1", summary.TotalPayments, summary.TotalExpenses)
	}
	if !summary.AmountPayments.Equal(decimal.NewFromInt(130)) {
		t.Fatalf("AmountPayments = %s, want 130", summary.AmountPayments)
	}
	if !summary.CashBalance.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("CashBalance = %s, want 90 (130 - 40)", summary.CashBalance)
	}
	if summary.ActiveSchoolYear != "2024-2025" {
		t.Fatalf("ActiveSchoolYear = %q, want 2024-2025", summary.ActiveSchoolYear)
	}
	if count := summary.StudentsPerClassroom["4ème Primaire"]; count != 2 {
		t.Fatalf("4ème Primaire count = %d, want 2", count)
	}
	if _, present := summary.StudentsPerClassroom["8ème Secondaire"]; present {
		t.Fatal("classroom with no students should be omitted from the map")
	}
}

func TestStudentFinancialStatement(t *testing.T) {
	db := openTestDB(t)
	s := populate(t, db)

	statement, err := GetStudentFinancialStatement(db, s.marieID)
	if err != nil {
		t.Fatalf("GetStudentFinancialStatement error: %v", err)
	}
	if statement.PaymentCount != 2 || !statement.TotalPaid.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("statement = %d payments / %s, want 2 / 100", statement.PaymentCount, statement.TotalPaid)
	}

	// A student with no payments gets a zeroed statement, not a failure.
	statement, err = GetStudentFinancialStatement(db, 999)
	if err != nil {
		t.Fatalf("GetStudentFinancialStatement error: %v", err)
	}
	if statement.PaymentCount != 0 || !statement.TotalPaid.Equal(decimal.Zero) {
		t.Fatalf("missing student statement = %d / %s, want 0 / 0", statement.PaymentCount, statement.TotalPaid)
	}
}

func TestFinancialReportByClassroom(t *testing.T) {
	db := openTestDB(t)
	s := populate(t, db)

	report, err := GetFinancialReportByClassroom(db, s.classroomID, DateRange{})
	if err != nil {
		t.Fatalf("GetFinancialReportByClassroom error: %v", err)
	}
	if len(report.Students) != 2 {
		t.Fatalf("report lists %d students, want 2 (soft-deleted excluded)", len(report.Students))
	}
	if !report.Total.Equal(decimal.NewFromInt(130)) {
		t.Fatalf("report total = %s, want 130", report.Total)
	}

	// Restricting the range to October drops Marie's September payment.
	report, err = GetFinancialReportByClassroom(db, s.classroomID, DateRange{Start: "2024-10-01", End: "2024-10-31"})
	if err != nil {
		t.Fatalf("GetFinancialReportByClassroom error: %v", err)
	}
	if !report.Total.Equal(decimal.NewFromInt(80)) {
		t.Fatalf("october total = %s, want 80", report.Total)
	}

	// Unknown classroom: empty report, not a failure.
	report, err = GetFinancialReportByClassroom(db, 999, DateRange{})
	if err != nil {
		t.Fatalf("GetFinancialReportByClassroom error: %v", err)
	}
	if len(report.Students) != 0 || !report.Total.Equal(decimal.Zero) {
		t.Fatalf("unknown classroom report = %d students / %s, want empty", len(report.Students), report.Total)
	}
}

func TestFinancialReportByStudent(t *testing.T) {
	db := openTestDB(t)
	s := populate(t, db)

	report, err := GetFinancialReportByStudent(db, s.marieID, DateRange{End: "2024-09-30"})
	if err != nil {
		t.Fatalf("GetFinancialReportByStudent error: %v", err)
	}
	if len(report.Payments) != 1 || !report.Total.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("september report = %d payments / %s, want 1 / 50", len(report.Payments), report.Total)
	}
}

func TestSchoolFinancialReport(t *testing.T) {
	db := openTestDB(t)
	populate(t, db)

	report, err := GetSchoolFinancialReport(db, DateRange{})
	if err != nil {
		t.Fatalf("GetSchoolFinancialReport error: %v", err)
	}
	if !report.TotalPayments.Equal(decimal.NewFromInt(130)) {
		t.Fatalf("TotalPayments = %s, want 130", report.TotalPayments)
	}
	if !report.TotalExpenses.Equal(decimal.NewFromInt(40)) {
		t.Fatalf("TotalExpenses = %s, want 40", report.TotalExpenses)
	}
	if !report.Net.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("Net = %s, want 90", report.Net)
	}
}

func TestCashRegisterReport(t *testing.T) {
	db := openTestDB(t)
	s := populate(t, db)

	rows := []struct {
		date      string
		entryType string
		amount    int64
	}{
		{"2024-09-10", models.EntryTypeIn, 100},
		{"2024-10-05", models.EntryTypeOut, 25},
		{"2024-11-01", models.EntryTypeIn, 60},
	}
	for _, row := range rows {
		if _, err := db.Exec(
			`INSERT INTO cash_ledger_entries (school_year_id, date, type, description, amount, user_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			s.yearID, row.date, row.entryType, "mouvement", decimal.NewFromInt(row.amount), s.userID,
		); err != nil {
			t.Fatalf("insert ledger entry error: %v", err)
		}
	}

	report, err := GetCashRegisterReport(db, DateRange{Start: "2024-09-01", End: "2024-10-31"})
	if err != nil {
		t.Fatalf("GetCashRegisterReport error: %v", err)
	}
	if len(report.Entries) != 2 {
		t.Fatalf("report has %d entries in range, want 2", len(report.Entries))
	}
	if !report.TotalIn.Equal(decimal.NewFromInt(100)) || !report.TotalOut.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("report = in %s / out %s, want 100 / 25", report.TotalIn, report.TotalOut)
	}
	if !report.Balance.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("report balance = %s, want 75", report.Balance)
	}
}
