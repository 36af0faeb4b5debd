package database

import (
	"database/sql"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

func GetAllStaff(db *sql.DB, vis Visibility) ([]*models.Staff, error) {
	query := `SELECT st.id, st.first_name, st.last_name, st.position, st.hire_date, st.salary_base, st.is_deleted
			  FROM staff st
			  WHERE ` + vis.where("st") + `
			  ORDER BY st.last_name, st.first_name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*models.Staff{}
	for rows.Next() {
		member := &models.Staff{}
		err := rows.Scan(&member.ID, &member.FirstName, &member.LastName,
			&member.Position, &member.HireDate, &member.SalaryBase, &member.IsDeleted)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, rows.Err()
}

func GetStaffByID(db *sql.DB, id int64, vis Visibility) (*models.Staff, error) {
	query := `SELECT st.id, st.first_name, st.last_name, st.position, st.hire_date, st.salary_base, st.is_deleted
			  FROM staff st
			  WHERE st.id = ? AND ` + vis.where("st")

	member := &models.Staff{}
	err := db.QueryRow(query, id).Scan(&member.ID, &member.FirstName, &member.LastName,
		&member.Position, &member.HireDate, &member.SalaryBase, &member.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return member, nil
}

func CreateStaff(db *sql.DB, member *models.Staff) (int64, error) {
	query := `INSERT INTO staff (first_name, last_name, position, hire_date, salary_base)
			  VALUES (?, ?, ?, ?, ?) RETURNING id`
	err := db.QueryRow(query, member.FirstName, member.LastName, member.Position,
		member.HireDate, member.SalaryBase).Scan(&member.ID)
	if err != nil {
		return 0, err
	}
	return member.ID, nil
}

func UpdateStaff(db *sql.DB, member *models.Staff) (bool, error) {
	query := `UPDATE staff
			  SET first_name = ?, last_name = ?, position = ?, hire_date = ?, salary_base = ?
			  WHERE id = ?`
	result, err := db.Exec(query, member.FirstName, member.LastName, member.Position,
		member.HireDate, member.SalaryBase, member.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeleteStaff(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE staff SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func GetAllStaffPayments(db *sql.DB, vis Visibility) ([]*models.StaffPayment, error) {
	query := `SELECT sp.id, sp.staff_id, sp.school_year_id, sp.amount, sp.payment_date, sp.user_id, sp.is_deleted,
			  st.first_name, st.last_name
			  FROM staff_payments sp
			  JOIN staff st ON sp.staff_id = st.id AND ` + vis.where("st") + `
			  WHERE ` + vis.where("sp") + `
			  ORDER BY sp.payment_date DESC, sp.id DESC`

	return queryStaffPayments(db, query)
}

func GetStaffPaymentsByStaff(db *sql.DB, staffID int64, vis Visibility) ([]*models.StaffPayment, error) {
	query := `SELECT sp.id, sp.staff_id, sp.school_year_id, sp.amount, sp.payment_date, sp.user_id, sp.is_deleted,
			  st.first_name, st.last_name
			  FROM staff_payments sp
			  JOIN staff st ON sp.staff_id = st.id AND ` + vis.where("st") + `
			  WHERE sp.staff_id = ? AND ` + vis.where("sp") + `
			  ORDER BY sp.payment_date DESC, sp.id DESC`

	return queryStaffPayments(db, query, staffID)
}

func queryStaffPayments(db *sql.DB, query string, args ...any) ([]*models.StaffPayment, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []*models.StaffPayment{}
	for rows.Next() {
		payment := &models.StaffPayment{}
		var firstName, lastName string
		err := rows.Scan(&payment.ID, &payment.StaffID, &payment.SchoolYearID,
			&payment.Amount, &payment.PaymentDate, &payment.UserID, &payment.IsDeleted,
			&firstName, &lastName)
		if err != nil {
			return nil, err
		}
		payment.Staff = &models.Staff{ID: payment.StaffID, FirstName: firstName, LastName: lastName}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}

func GetStaffPaymentByID(db *sql.DB, id int64, vis Visibility) (*models.StaffPayment, error) {
	query := `SELECT sp.id, sp.staff_id, sp.school_year_id, sp.amount, sp.payment_date, sp.user_id, sp.is_deleted
			  FROM staff_payments sp
			  WHERE sp.id = ? AND ` + vis.where("sp")

	payment := &models.StaffPayment{}
	err := db.QueryRow(query, id).Scan(&payment.ID, &payment.StaffID, &payment.SchoolYearID,
		&payment.Amount, &payment.PaymentDate, &payment.UserID, &payment.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func DeleteStaffPayment(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE staff_payments SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
