package database

import (
	"database/sql"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

func GetAllCashLedgerEntries(db *sql.DB, vis Visibility) ([]*models.CashLedgerEntry, error) {
	query := `SELECT l.id, l.school_year_id, l.date, l.type, l.description, l.amount, l.user_id, l.is_deleted
			  FROM cash_ledger_entries l
			  WHERE ` + vis.where("l") + `
			  ORDER BY l.date DESC, l.id DESC`

	return queryCashLedgerEntries(db, query)
}

func GetCashLedgerEntriesBySchoolYear(db *sql.DB, schoolYearID int64, vis Visibility) ([]*models.CashLedgerEntry, error) {
	query := `SELECT l.id, l.school_year_id, l.date, l.type, l.description, l.amount, l.user_id, l.is_deleted
			  FROM cash_ledger_entries l
			  WHERE l.school_year_id = ? AND ` + vis.where("l") + `
			  ORDER BY l.date DESC, l.id DESC`

	return queryCashLedgerEntries(db, query, schoolYearID)
}

func queryCashLedgerEntries(db *sql.DB, query string, args ...any) ([]*models.CashLedgerEntry, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.CashLedgerEntry{}
	for rows.Next() {
		entry := &models.CashLedgerEntry{}
		err := rows.Scan(&entry.ID, &entry.SchoolYearID, &entry.Date, &entry.Type,
			&entry.Description, &entry.Amount, &entry.UserID, &entry.IsDeleted)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func GetCashLedgerEntryByID(db *sql.DB, id int64, vis Visibility) (*models.CashLedgerEntry, error) {
	query := `SELECT l.id, l.school_year_id, l.date, l.type, l.description, l.amount, l.user_id, l.is_deleted
			  FROM cash_ledger_entries l
			  WHERE l.id = ? AND ` + vis.where("l")

	entry := &models.CashLedgerEntry{}
	err := db.QueryRow(query, id).Scan(&entry.ID, &entry.SchoolYearID, &entry.Date,
		&entry.Type, &entry.Description, &entry.Amount, &entry.UserID, &entry.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func DeleteCashLedgerEntry(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE cash_ledger_entries SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
