package database

import (
	"database/sql"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

func GetAllClassrooms(db *sql.DB, vis Visibility) ([]*models.Classroom, error) {
	query := `SELECT c.id, c.name, c.level, c.is_deleted
			  FROM classrooms c
			  WHERE ` + vis.where("c") + `
			  ORDER BY c.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	classrooms := []*models.Classroom{}
	for rows.Next() {
		classroom := &models.Classroom{}
		if err := rows.Scan(&classroom.ID, &classroom.Name, &classroom.Level, &classroom.IsDeleted); err != nil {
			return nil, err
		}
		classrooms = append(classrooms, classroom)
	}
	return classrooms, rows.Err()
}

func GetClassroomByID(db *sql.DB, id int64, vis Visibility) (*models.Classroom, error) {
	query := `SELECT c.id, c.name, c.level, c.is_deleted
			  FROM classrooms c
			  WHERE c.id = ? AND ` + vis.where("c")

	classroom := &models.Classroom{}
	err := db.QueryRow(query, id).Scan(&classroom.ID, &classroom.Name, &classroom.Level, &classroom.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return classroom, nil
}

func CreateClassroom(db *sql.DB, classroom *models.Classroom) (int64, error) {
	query := `INSERT INTO classrooms (name, level) VALUES (?, ?) RETURNING id`
	err := db.QueryRow(query, classroom.Name, classroom.Level).Scan(&classroom.ID)
	if err != nil {
		return 0, err
	}
	return classroom.ID, nil
}

func UpdateClassroom(db *sql.DB, classroom *models.Classroom) (bool, error) {
	query := `UPDATE classrooms SET name = ?, level = ? WHERE id = ?`
	result, err := db.Exec(query, classroom.Name, classroom.Level, classroom.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeleteClassroom(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE classrooms SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
