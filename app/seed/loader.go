package seed

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/Victoire243/iSchool-sub000/app/database"
)

// Load replaces the store's contents with the dataset: the schema is dropped
// and recreated, then every table is populated in foreign-key order inside a
// single transaction, so a failed load never leaves a half-populated store.
func Load(db *sql.DB, ds *Dataset) error {
	log.Println("Reloading database from generated dataset...")

	if err := database.DropSchema(db); err != nil {
		return err
	}
	if err := database.CreateSchema(db); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, role := range ds.Roles {
		if _, err := tx.Exec(`INSERT INTO roles (id, name, description) VALUES (?, ?, ?)`,
			role.ID, role.Name, role.Description); err != nil {
			return fmt.Errorf("failed to load roles: %w", err)
		}
	}
	for _, user := range ds.Users {
		if _, err := tx.Exec(`INSERT INTO users (id, username, password, full_name, role_id) VALUES (?, ?, ?, ?, ?)`,
			user.ID, user.Username, user.Password, user.FullName, user.RoleID); err != nil {
			return fmt.Errorf("failed to load users: %w", err)
		}
	}
	for _, year := range ds.SchoolYears {
		if _, err := tx.Exec(`INSERT INTO school_years (id, name, start_date, end_date, is_active) VALUES (?, ?, ?, ?, ?)`,
			year.ID, year.Name, year.StartDate, year.EndDate, year.IsActive); err != nil {
			return fmt.Errorf("failed to load school years: %w", err)
		}
	}
	for _, classroom := range ds.Classrooms {
		if _, err := tx.Exec(`INSERT INTO classrooms (id, name, level) VALUES (?, ?, ?)`,
			classroom.ID, classroom.Name, classroom.Level); err != nil {
			return fmt.Errorf("failed to load classrooms: %w", err)
		}
	}
	for _, student := range ds.Students {
		if _, err := tx.Exec(
			`INSERT INTO students (id, first_name, last_name, surname, gender, date_of_birth, address, parent_contact)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			student.ID, student.FirstName, student.LastName, student.Surname, student.Gender,
			student.DateOfBirth, student.Address, student.ParentContact); err != nil {
			return fmt.Errorf("failed to load students: %w", err)
		}
	}
	for _, paymentType := range ds.PaymentTypes {
		if _, err := tx.Exec(`INSERT INTO payment_types (id, name, description, amount_defined) VALUES (?, ?, ?, ?)`,
			paymentType.ID, paymentType.Name, paymentType.Description, paymentType.AmountDefined); err != nil {
			return fmt.Errorf("failed to load payment types: %w", err)
		}
	}
	for _, enrollment := range ds.Enrollments {
		if _, err := tx.Exec(
			`INSERT INTO enrollments (id, student_id, classroom_id, school_year_id, status) VALUES (?, ?, ?, ?, ?)`,
			enrollment.ID, enrollment.StudentID, enrollment.ClassroomID,
			enrollment.SchoolYearID, enrollment.Status); err != nil {
			return fmt.Errorf("failed to load enrollments: %w", err)
		}
	}
	for _, payment := range ds.Payments {
		if _, err := tx.Exec(
			`INSERT INTO payments (id, student_id, school_year_id, payment_type_id, amount, payment_date, reference, user_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			payment.ID, payment.StudentID, payment.SchoolYearID, payment.PaymentTypeID,
			payment.Amount, payment.PaymentDate, payment.Reference, payment.UserID); err != nil {
			return fmt.Errorf("failed to load payments: %w", err)
		}
	}
	for _, expense := range ds.Expenses {
		if _, err := tx.Exec(
			`INSERT INTO expenses (id, school_year_id, expense_date, description, amount, user_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			expense.ID, expense.SchoolYearID, expense.ExpenseDate, expense.Description,
			expense.Amount, expense.UserID); err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
	}
	for _, member := range ds.Staff {
		if _, err := tx.Exec(
			`INSERT INTO staff (id, first_name, last_name, position, hire_date, salary_base)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			member.ID, member.FirstName, member.LastName, member.Position,
			member.HireDate, member.SalaryBase); err != nil {
			return fmt.Errorf("failed to load staff: %w", err)
		}
	}
	for _, payment := range ds.StaffPayments {
		if _, err := tx.Exec(
			`INSERT INTO staff_payments (id, staff_id, school_year_id, amount, payment_date, user_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			payment.ID, payment.StaffID, payment.SchoolYearID, payment.Amount,
			payment.PaymentDate, payment.UserID); err != nil {
			return fmt.Errorf("failed to load staff payments: %w", err)
		}
	}
	for _, entry := range ds.LedgerEntries {
		if _, err := tx.Exec(
			`INSERT INTO cash_ledger_entries (id, school_year_id, date, type, description, amount, user_id)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			entry.ID, entry.SchoolYearID, entry.Date, entry.Type, entry.Description,
			entry.Amount, entry.UserID); err != nil {
			return fmt.Errorf("failed to load ledger entries: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Printf("Dataset loaded: %d students, %d payments, %d expenses, %d ledger entries",
		len(ds.Students), len(ds.Payments), len(ds.Expenses), len(ds.LedgerEntries))
	return nil
}
