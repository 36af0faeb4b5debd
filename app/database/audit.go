package database

import (
	"database/sql"
	"time"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

// LogAction appends an entry to the audit log. The log is append-only; no
// update or delete path exists.
func LogAction(db *sql.DB, userID int64, action, tableName string, recordID int64, details string) error {
	query := `INSERT INTO audit_log (user_id, action, table_name, record_id, timestamp, details)
			  VALUES (?, ?, ?, ?, ?, ?)`
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, err := db.Exec(query, userID, action, tableName, recordID, timestamp, details)
	return err
}

// GetAuditLog returns the most recent entries, newest first. limit <= 0
// returns everything.
func GetAuditLog(db *sql.DB, limit int) ([]*models.AuditLogEntry, error) {
	query := `SELECT id, user_id, action, table_name, record_id, timestamp, details
			  FROM audit_log
			  ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*models.AuditLogEntry{}
	for rows.Next() {
		entry := &models.AuditLogEntry{}
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.Action, &entry.TableName,
			&entry.RecordID, &entry.Timestamp, &entry.Details)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
