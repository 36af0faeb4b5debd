package database

import (
	"database/sql"
	"fmt"
)

// schema defines the fourteen tables of the persistence core. Dates are
// YYYY-MM-DD text, identifiers are autoincrementing integers, and every
// deletable table carries is_deleted (soft delete; rows are never removed
// by normal application flow).
const schema = `
CREATE TABLE IF NOT EXISTS roles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	full_name TEXT NOT NULL,
	role_id INTEGER NOT NULL REFERENCES roles(id),
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS school_years (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	start_date TEXT NOT NULL,
	end_date TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 0,
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS classrooms (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	level TEXT NOT NULL DEFAULT '',
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS students (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	surname TEXT NOT NULL DEFAULT '',
	gender TEXT NOT NULL DEFAULT '',
	date_of_birth TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT '',
	parent_contact TEXT NOT NULL DEFAULT '',
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS enrollments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	student_id INTEGER NOT NULL REFERENCES students(id),
	classroom_id INTEGER NOT NULL REFERENCES classrooms(id),
	school_year_id INTEGER NOT NULL REFERENCES school_years(id),
	status TEXT NOT NULL DEFAULT 'Inscrit',
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS payment_types (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	amount_defined NUMERIC NOT NULL DEFAULT 0,
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS payments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	student_id INTEGER NOT NULL REFERENCES students(id),
	school_year_id INTEGER NOT NULL REFERENCES school_years(id),
	payment_type_id INTEGER NOT NULL REFERENCES payment_types(id),
	amount NUMERIC NOT NULL,
	payment_date TEXT NOT NULL,
	reference TEXT NOT NULL DEFAULT '',
	user_id INTEGER NOT NULL REFERENCES users(id),
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS expenses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	school_year_id INTEGER NOT NULL REFERENCES school_years(id),
	expense_date TEXT NOT NULL,
	description TEXT NOT NULL,
	amount NUMERIC NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id),
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS staff (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	position TEXT NOT NULL DEFAULT '',
	hire_date TEXT NOT NULL DEFAULT '',
	salary_base NUMERIC NOT NULL DEFAULT 0,
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS staff_payments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	staff_id INTEGER NOT NULL REFERENCES staff(id),
	school_year_id INTEGER NOT NULL REFERENCES school_years(id),
	amount NUMERIC NOT NULL,
	payment_date TEXT NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id),
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS cash_ledger_entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	school_year_id INTEGER NOT NULL REFERENCES school_years(id),
	date TEXT NOT NULL,
	type TEXT NOT NULL CHECK (type IN ('Entrée', 'Sortie')),
	description TEXT NOT NULL DEFAULT '',
	amount NUMERIC NOT NULL,
	user_id INTEGER NOT NULL REFERENCES users(id),
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	key TEXT NOT NULL UNIQUE,
	value TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS audit_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	action TEXT NOT NULL,
	table_name TEXT NOT NULL DEFAULT '',
	record_id INTEGER NOT NULL DEFAULT 0,
	timestamp TEXT NOT NULL,
	details TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_enrollments_student_id ON enrollments(student_id);
CREATE INDEX IF NOT EXISTS idx_enrollments_classroom_id ON enrollments(classroom_id);
CREATE INDEX IF NOT EXISTS idx_enrollments_school_year_id ON enrollments(school_year_id);
CREATE INDEX IF NOT EXISTS idx_payments_student_id ON payments(student_id);
CREATE INDEX IF NOT EXISTS idx_payments_payment_date ON payments(payment_date);
CREATE INDEX IF NOT EXISTS idx_expenses_expense_date ON expenses(expense_date);
CREATE INDEX IF NOT EXISTS idx_staff_payments_staff_id ON staff_payments(staff_id);
CREATE INDEX IF NOT EXISTS idx_cash_ledger_date ON cash_ledger_entries(date);
CREATE INDEX IF NOT EXISTS idx_cash_ledger_type ON cash_ledger_entries(type);
`

// tables in reverse dependency order, used by DropSchema.
var tables = []string{
	"audit_log",
	"settings",
	"cash_ledger_entries",
	"staff_payments",
	"staff",
	"expenses",
	"payments",
	"payment_types",
	"enrollments",
	"students",
	"classrooms",
	"school_years",
	"users",
	"roles",
}

// CreateSchema creates all tables and indexes if they do not exist.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// DropSchema removes every table. Only the dataset loader calls this, right
// before repopulating a development database.
func DropSchema(db *sql.DB) error {
	for _, table := range tables {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}
