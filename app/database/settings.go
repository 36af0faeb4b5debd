package database

import (
	"database/sql"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

// GetSetting returns the setting for key, or (nil, nil) when absent.
func GetSetting(db *sql.DB, key string) (*models.Setting, error) {
	query := `SELECT id, key, value, description FROM settings WHERE key = ?`

	setting := &models.Setting{}
	err := db.QueryRow(query, key).Scan(&setting.ID, &setting.Key, &setting.Value, &setting.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return setting, nil
}

func GetAllSettings(db *sql.DB) ([]*models.Setting, error) {
	rows, err := db.Query(`SELECT id, key, value, description FROM settings ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := []*models.Setting{}
	for rows.Next() {
		setting := &models.Setting{}
		if err := rows.Scan(&setting.ID, &setting.Key, &setting.Value, &setting.Description); err != nil {
			return nil, err
		}
		settings = append(settings, setting)
	}
	return settings, rows.Err()
}

// SetSetting inserts or updates the setting keyed on key.
func SetSetting(db *sql.DB, key, value, description string) error {
	query := `INSERT INTO settings (key, value, description) VALUES (?, ?, ?)
			  ON CONFLICT(key) DO UPDATE SET value = excluded.value, description = excluded.description`
	_, err := db.Exec(query, key, value, description)
	return err
}
