package database

import (
	"database/sql"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

func GetAllSchoolYears(db *sql.DB, vis Visibility) ([]*models.SchoolYear, error) {
	query := `SELECT y.id, y.name, y.start_date, y.end_date, y.is_active, y.is_deleted
			  FROM school_years y
			  WHERE ` + vis.where("y") + `
			  ORDER BY y.start_date DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	years := []*models.SchoolYear{}
	for rows.Next() {
		year := &models.SchoolYear{}
		err := rows.Scan(&year.ID, &year.Name, &year.StartDate, &year.EndDate,
			&year.IsActive, &year.IsDeleted)
		if err != nil {
			return nil, err
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

func GetSchoolYearByID(db *sql.DB, id int64, vis Visibility) (*models.SchoolYear, error) {
	query := `SELECT y.id, y.name, y.start_date, y.end_date, y.is_active, y.is_deleted
			  FROM school_years y
			  WHERE y.id = ? AND ` + vis.where("y")

	year := &models.SchoolYear{}
	err := db.QueryRow(query, id).Scan(&year.ID, &year.Name, &year.StartDate,
		&year.EndDate, &year.IsActive, &year.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return year, nil
}

// GetActiveSchoolYear returns the single non-deleted school year flagged
// active, or (nil, nil) when none exists. If the single-active invariant is
// ever violated, the most recent start date wins.
func GetActiveSchoolYear(db *sql.DB) (*models.SchoolYear, error) {
	query := `SELECT y.id, y.name, y.start_date, y.end_date, y.is_active, y.is_deleted
			  FROM school_years y
			  WHERE y.is_active = 1 AND y.is_deleted = 0
			  ORDER BY y.start_date DESC
			  LIMIT 1`

	year := &models.SchoolYear{}
	err := db.QueryRow(query).Scan(&year.ID, &year.Name, &year.StartDate,
		&year.EndDate, &year.IsActive, &year.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return year, nil
}

func CreateSchoolYear(db *sql.DB, year *models.SchoolYear) (int64, error) {
	query := `INSERT INTO school_years (name, start_date, end_date, is_active)
			  VALUES (?, ?, ?, ?) RETURNING id`
	err := db.QueryRow(query, year.Name, year.StartDate, year.EndDate, year.IsActive).Scan(&year.ID)
	if err != nil {
		return 0, err
	}
	return year.ID, nil
}

// SetActiveSchoolYear flags one school year active and clears the flag on
// every other row, preserving the single-active invariant.
func SetActiveSchoolYear(db *sql.DB, id int64) (bool, error) {
	tx, err := db.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE school_years SET is_active = 0 WHERE id != ?`, id); err != nil {
		return false, err
	}
	result, err := tx.Exec(`UPDATE school_years SET is_active = 1 WHERE id = ? AND is_deleted = 0`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}
	return true, tx.Commit()
}

func UpdateSchoolYear(db *sql.DB, year *models.SchoolYear) (bool, error) {
	query := `UPDATE school_years SET name = ?, start_date = ?, end_date = ?, is_active = ?
			  WHERE id = ?`
	result, err := db.Exec(query, year.Name, year.StartDate, year.EndDate, year.IsActive, year.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeleteSchoolYear(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE school_years SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
