package seed

import (
	"database/sql"
	"reflect"
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

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate(42)
	second := Generate(42)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two datasets from the same seed differ")
	}

	other := Generate(7)
	if reflect.DeepEqual(first.Students, other.Students) {
		t.Fatal("different seeds produced identical student lists")
	}
}

func TestGeneratedDatasetIsConsistent(t *testing.T) {
	ds := Generate(42)

	if len(ds.Students) < 30 || len(ds.Students) > 50 {
		t.Fatalf("generated %d students, want between 30 and 50", len(ds.Students))
	}
	if len(ds.Enrollments) != len(ds.Students) {
		t.Fatalf("%d enrollments for %d students, want one each", len(ds.Enrollments), len(ds.Students))
	}

	var active *models.SchoolYear
	for _, year := range ds.SchoolYears {
		if year.IsActive {
			if active != nil {
				t.Fatal("more than one active school year")
			}
			active = year
		}
	}
	if active == nil {
		t.Fatal("no active school year in the dataset")
	}

	for _, enrollment := range ds.Enrollments {
		if enrollment.SchoolYearID != active.ID {
			t.Fatalf("enrollment %d targets year %d, want active year %d",
				enrollment.ID, enrollment.SchoolYearID, active.ID)
		}
	}

	// Every money movement is mirrored, so the ledger row count is the sum
	// of the three source tables.
	want := len(ds.Payments) + len(ds.Expenses) + len(ds.StaffPayments)
	if len(ds.LedgerEntries) != want {
		t.Fatalf("ledger holds %d entries, want %d", len(ds.LedgerEntries), want)
	}

	in, out := decimal.Zero, decimal.Zero
	for _, entry := range ds.LedgerEntries {
		switch entry.Type {
		case models.EntryTypeIn:
			in = in.Add(entry.Amount)
		case models.EntryTypeOut:
			out = out.Add(entry.Amount)
		default:
			t.Fatalf("ledger entry %d has type %q", entry.ID, entry.Type)
		}
	}

	payments := decimal.Zero
	for _, payment := range ds.Payments {
		payments = payments.Add(payment.Amount)
	}
	if !in.Equal(payments) {
		t.Fatalf("ledger inflow %s does not match payment total %s", in, payments)
	}

	outgoing := decimal.Zero
	for _, expense := range ds.Expenses {
		outgoing = outgoing.Add(expense.Amount)
	}
	for _, payment := range ds.StaffPayments {
		outgoing = outgoing.Add(payment.Amount)
	}
	if !out.Equal(outgoing) {
		t.Fatalf("ledger outflow %s does not match expense and staff payment total %s", out, outgoing)
	}
}

func TestLoadSameSeedSameActiveYear(t *testing.T) {
	firstYear := loadAndReadActiveYear(t)
	secondYear := loadAndReadActiveYear(t)

	if firstYear != secondYear {
		t.Fatalf("active school year differs between runs: %q vs %q", firstYear, secondYear)
	}
}

func loadAndReadActiveYear(t *testing.T) string {
	t.Helper()

	db := openTestDB(t)
	if err := Load(db, Generate(42)); err != nil {
		t.Fatalf("Load error: %v", err)
	}
	year, err := database.GetActiveSchoolYear(db)
	if err != nil {
		t.Fatalf("GetActiveSchoolYear error: %v", err)
	}
	if year == nil {
		t.Fatal("loaded store has no active school year")
	}
	return year.Name
}

func TestLoadPersistsWholeDataset(t *testing.T) {
	db := openTestDB(t)
	ds := Generate(42)
	if err := Load(db, ds); err != nil {
		t.Fatalf("Load error: %v", err)
	}

	counts := []struct {
		table string
		want  int
	}{
		{"roles", len(ds.Roles)},
		{"users", len(ds.Users)},
		{"school_years", len(ds.SchoolYears)},
		{"classrooms", len(ds.Classrooms)},
		{"students", len(ds.Students)},
		{"payment_types", len(ds.PaymentTypes)},
		{"enrollments", len(ds.Enrollments)},
		{"payments", len(ds.Payments)},
		{"expenses", len(ds.Expenses)},
		{"staff", len(ds.Staff)},
		{"staff_payments", len(ds.StaffPayments)},
		{"cash_ledger_entries", len(ds.LedgerEntries)},
	}
	for _, c := range counts {
		var got int
		if err := db.QueryRow(`SELECT COUNT(*) FROM ` + c.table).Scan(&got); err != nil {
			t.Fatalf("counting %s: %v", c.table, err)
		}
		if got != c.want {
			t.Fatalf("%s holds %d rows, want %d", c.table, got, c.want)
		}
	}

	// Loading again starts from a clean schema instead of stacking rows.
	if err := Load(db, ds); err != nil {
		t.Fatalf("second Load error: %v", err)
	}
	var students int
	if err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&students); err != nil {
		t.Fatalf("counting students: %v", err)
	}
	if students != len(ds.Students) {
		t.Fatalf("students after reload = %d, want %d", students, len(ds.Students))
	}
}
