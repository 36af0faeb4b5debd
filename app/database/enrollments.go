package database

import (
	"database/sql"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

func GetAllEnrollments(db *sql.DB, vis Visibility) ([]*models.Enrollment, error) {
	query := `SELECT e.id, e.student_id, e.classroom_id, e.school_year_id, e.status, e.is_deleted,
			  s.first_name, s.last_name, c.name
			  FROM enrollments e
			  JOIN students s ON e.student_id = s.id AND ` + vis.where("s") + `
			  JOIN classrooms c ON e.classroom_id = c.id AND ` + vis.where("c") + `
			  WHERE ` + vis.where("e") + `
			  ORDER BY s.last_name, s.first_name`

	return queryEnrollments(db, query)
}

// GetEnrollmentsByClassroom returns the roster of one classroom for one
// school year.
func GetEnrollmentsByClassroom(db *sql.DB, classroomID, schoolYearID int64, vis Visibility) ([]*models.Enrollment, error) {
	query := `SELECT e.id, e.student_id, e.classroom_id, e.school_year_id, e.status, e.is_deleted,
			  s.first_name, s.last_name, c.name
			  FROM enrollments e
			  JOIN students s ON e.student_id = s.id AND ` + vis.where("s") + `
			  JOIN classrooms c ON e.classroom_id = c.id AND ` + vis.where("c") + `
			  WHERE e.classroom_id = ? AND e.school_year_id = ? AND ` + vis.where("e") + `
			  ORDER BY s.last_name, s.first_name`

	return queryEnrollments(db, query, classroomID, schoolYearID)
}

func GetEnrollmentsByStudent(db *sql.DB, studentID int64, vis Visibility) ([]*models.Enrollment, error) {
	query := `SELECT e.id, e.student_id, e.classroom_id, e.school_year_id, e.status, e.is_deleted,
			  s.first_name, s.last_name, c.name
			  FROM enrollments e
			  JOIN students s ON e.student_id = s.id AND ` + vis.where("s") + `
			  JOIN classrooms c ON e.classroom_id = c.id AND ` + vis.where("c") + `
			  WHERE e.student_id = ? AND ` + vis.where("e") + `
			  ORDER BY e.school_year_id DESC`

	return queryEnrollments(db, query, studentID)
}

func queryEnrollments(db *sql.DB, query string, args ...any) ([]*models.Enrollment, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		enrollment := &models.Enrollment{}
		var firstName, lastName, className string
		err := rows.Scan(&enrollment.ID, &enrollment.StudentID, &enrollment.ClassroomID,
			&enrollment.SchoolYearID, &enrollment.Status, &enrollment.IsDeleted,
			&firstName, &lastName, &className)
		if err != nil {
			return nil, err
		}
		enrollment.Student = &models.Student{ID: enrollment.StudentID, FirstName: firstName, LastName: lastName}
		enrollment.Classroom = &models.Classroom{ID: enrollment.ClassroomID, Name: className}
		enrollments = append(enrollments, enrollment)
	}
	return enrollments, rows.Err()
}

func GetEnrollmentByID(db *sql.DB, id int64, vis Visibility) (*models.Enrollment, error) {
	query := `SELECT e.id, e.student_id, e.classroom_id, e.school_year_id, e.status, e.is_deleted
			  FROM enrollments e
			  WHERE e.id = ? AND ` + vis.where("e")

	enrollment := &models.Enrollment{}
	err := db.QueryRow(query, id).Scan(&enrollment.ID, &enrollment.StudentID,
		&enrollment.ClassroomID, &enrollment.SchoolYearID, &enrollment.Status, &enrollment.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return enrollment, nil
}

func CreateEnrollment(db *sql.DB, enrollment *models.Enrollment) (int64, error) {
	if enrollment.Status == "" {
		enrollment.Status = "Inscrit"
	}
	query := `INSERT INTO enrollments (student_id, classroom_id, school_year_id, status)
			  VALUES (?, ?, ?, ?) RETURNING id`
	err := db.QueryRow(query, enrollment.StudentID, enrollment.ClassroomID,
		enrollment.SchoolYearID, enrollment.Status).Scan(&enrollment.ID)
	if err != nil {
		return 0, err
	}
	return enrollment.ID, nil
}

func UpdateEnrollment(db *sql.DB, enrollment *models.Enrollment) (bool, error) {
	query := `UPDATE enrollments
			  SET student_id = ?, classroom_id = ?, school_year_id = ?, status = ?
			  WHERE id = ?`
	result, err := db.Exec(query, enrollment.StudentID, enrollment.ClassroomID,
		enrollment.SchoolYearID, enrollment.Status, enrollment.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeleteEnrollment(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE enrollments SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
