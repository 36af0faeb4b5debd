package database

import (
	"database/sql"
	"errors"
	"log"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

// ErrNoActiveSchoolYear is returned by operations that need an active school
// year (student import, payment recording) when none exists. It is a
// validation failure, reported before any write.
var ErrNoActiveSchoolYear = errors.New("no active school year")

const studentColumns = `s.id, s.first_name, s.last_name, s.surname, s.gender,
			  s.date_of_birth, s.address, s.parent_contact, s.is_deleted`

func scanStudent(row interface{ Scan(...any) error }, s *models.Student) error {
	return row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Surname, &s.Gender,
		&s.DateOfBirth, &s.Address, &s.ParentContact, &s.IsDeleted)
}

func GetAllStudents(db *sql.DB, vis Visibility) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + `
			  FROM students s
			  WHERE ` + vis.where("s") + `
			  ORDER BY s.last_name, s.first_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := scanStudent(rows, student); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, id int64, vis Visibility) (*models.Student, error) {
	query := `SELECT ` + studentColumns + `
			  FROM students s
			  WHERE s.id = ? AND ` + vis.where("s")

	student := &models.Student{}
	err := scanStudent(db.QueryRow(query, id), student)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return student, nil
}

// SearchStudents performs a case-insensitive substring match over first
// name, last name, surname and parent contact, under the same visibility
// filter as GetAllStudents.
func SearchStudents(db *sql.DB, term string, vis Visibility) ([]*models.Student, error) {
	pattern := "%" + term + "%"
	query := `SELECT ` + studentColumns + `
			  FROM students s
			  WHERE ` + vis.where("s") + `
			  AND (LOWER(s.first_name) LIKE LOWER(?)
				   OR LOWER(s.last_name) LIKE LOWER(?)
				   OR LOWER(s.surname) LIKE LOWER(?)
				   OR LOWER(s.parent_contact) LIKE LOWER(?))
			  ORDER BY s.last_name, s.first_name`

	rows, err := db.Query(query, pattern, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student := &models.Student{}
		if err := scanStudent(rows, student); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func CreateStudent(db *sql.DB, student *models.Student) (int64, error) {
	query := `INSERT INTO students (first_name, last_name, surname, gender, date_of_birth, address, parent_contact)
			  VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`
	err := db.QueryRow(query, student.FirstName, student.LastName, student.Surname,
		student.Gender, student.DateOfBirth, student.Address, student.ParentContact).Scan(&student.ID)
	if err != nil {
		return 0, err
	}
	return student.ID, nil
}

func UpdateStudent(db *sql.DB, student *models.Student) (bool, error) {
	query := `UPDATE students
			  SET first_name = ?, last_name = ?, surname = ?, gender = ?,
				  date_of_birth = ?, address = ?, parent_contact = ?
			  WHERE id = ?`
	result, err := db.Exec(query, student.FirstName, student.LastName, student.Surname,
		student.Gender, student.DateOfBirth, student.Address, student.ParentContact, student.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeleteStudent(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE students SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ImportStudents bulk-inserts students and enrolls each of them in the given
// classroom for the active school year. Per-row failures are skipped and the
// rest of the batch still commits; the returned count is the number of
// students actually imported.
func ImportStudents(db *sql.DB, students []*models.Student, classroomID int64) (int, error) {
	year, err := GetActiveSchoolYear(db)
	if err != nil {
		return 0, err
	}
	if year == nil {
		return 0, ErrNoActiveSchoolYear
	}

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	imported := 0
	for _, student := range students {
		if student.FirstName == "" || student.LastName == "" {
			log.Printf("Skipping student import without name: %+v", student)
			continue
		}

		var studentID int64
		err := tx.QueryRow(
			`INSERT INTO students (first_name, last_name, surname, gender, date_of_birth, address, parent_contact)
			 VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`,
			student.FirstName, student.LastName, student.Surname, student.Gender,
			student.DateOfBirth, student.Address, student.ParentContact,
		).Scan(&studentID)
		if err != nil {
			log.Printf("Skipping student %s %s: %v", student.FirstName, student.LastName, err)
			continue
		}

		_, err = tx.Exec(
			`INSERT INTO enrollments (student_id, classroom_id, school_year_id) VALUES (?, ?, ?)`,
			studentID, classroomID, year.ID,
		)
		if err != nil {
			log.Printf("Skipping enrollment for student %s %s: %v", student.FirstName, student.LastName, err)
			continue
		}

		student.ID = studentID
		imported++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return imported, nil
}
