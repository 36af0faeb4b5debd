package database

import (
	"database/sql"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

func GetAllPayments(db *sql.DB, vis Visibility) ([]*models.Payment, error) {
	query := `SELECT p.id, p.student_id, p.school_year_id, p.payment_type_id, p.amount,
			  p.payment_date, p.reference, p.user_id, p.is_deleted,
			  s.first_name, s.last_name, t.name
			  FROM payments p
			  JOIN students s ON p.student_id = s.id AND ` + vis.where("s") + `
			  JOIN payment_types t ON p.payment_type_id = t.id AND ` + vis.where("t") + `
			  WHERE ` + vis.where("p") + `
			  ORDER BY p.payment_date DESC, p.id DESC`

	return queryPayments(db, query)
}

func GetPaymentsByStudent(db *sql.DB, studentID int64, vis Visibility) ([]*models.Payment, error) {
	query := `SELECT p.id, p.student_id, p.school_year_id, p.payment_type_id, p.amount,
			  p.payment_date, p.reference, p.user_id, p.is_deleted,
			  s.first_name, s.last_name, t.name
			  FROM payments p
			  JOIN students s ON p.student_id = s.id AND ` + vis.where("s") + `
			  JOIN payment_types t ON p.payment_type_id = t.id AND ` + vis.where("t") + `
			  WHERE p.student_id = ? AND ` + vis.where("p") + `
			  ORDER BY p.payment_date DESC, p.id DESC`

	return queryPayments(db, query, studentID)
}

func queryPayments(db *sql.DB, query string, args ...any) ([]*models.Payment, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.Payment{}
	for rows.Next() {
		payment := &models.Payment{}
		var firstName, lastName, typeName string
		err := rows.Scan(&payment.ID, &payment.StudentID, &payment.SchoolYearID,
			&payment.PaymentTypeID, &payment.Amount, &payment.PaymentDate,
			&payment.Reference, &payment.UserID, &payment.IsDeleted,
			&firstName, &lastName, &typeName)
		if err != nil {
			return nil, err
		}
		payment.Student = &models.Student{ID: payment.StudentID, FirstName: firstName, LastName: lastName}
		payment.PaymentType = &models.PaymentType{ID: payment.PaymentTypeID, Name: typeName}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func GetPaymentByID(db *sql.DB, id int64, vis Visibility) (*models.Payment, error) {
	query := `SELECT p.id, p.student_id, p.school_year_id, p.payment_type_id, p.amount,
			  p.payment_date, p.reference, p.user_id, p.is_deleted
			  FROM payments p
			  WHERE p.id = ? AND ` + vis.where("p")

	payment := &models.Payment{}
	err := db.QueryRow(query, id).Scan(&payment.ID, &payment.StudentID,
		&payment.SchoolYearID, &payment.PaymentTypeID, &payment.Amount,
		&payment.PaymentDate, &payment.Reference, &payment.UserID, &payment.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// CreatePayment records money received. It does not write a ledger entry;
// the dashboard derives its cash balance from payment and expense sums.
func CreatePayment(db *sql.DB, payment *models.Payment) (int64, error) {
	query := `INSERT INTO payments (student_id, school_year_id, payment_type_id, amount, payment_date, reference, user_id)
			  VALUES (?, ?, ?, ?, ?, ?, ?) RETURNING id`
	err := db.QueryRow(query, payment.StudentID, payment.SchoolYearID, payment.PaymentTypeID,
		payment.Amount, payment.PaymentDate, payment.Reference, payment.UserID).Scan(&payment.ID)
	if err != nil {
		return 0, err
	}
	return payment.ID, nil
}

func UpdatePayment(db *sql.DB, payment *models.Payment) (bool, error) {
	query := `UPDATE payments
			  SET student_id = ?, school_year_id = ?, payment_type_id = ?, amount = ?,
				  payment_date = ?, reference = ?, user_id = ?
			  WHERE id = ?`
	result, err := db.Exec(query, payment.StudentID, payment.SchoolYearID, payment.PaymentTypeID,
		payment.Amount, payment.PaymentDate, payment.Reference, payment.UserID, payment.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeletePayment(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE payments SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
