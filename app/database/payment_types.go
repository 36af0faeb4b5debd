package database

import (
	"database/sql"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

func GetAllPaymentTypes(db *sql.DB, vis Visibility) ([]*models.PaymentType, error) {
	query := `SELECT t.id, t.name, t.description, t.amount_defined, t.is_deleted
			  FROM payment_types t
			  WHERE ` + vis.where("t") + `
			  ORDER BY t.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	types := []*models.PaymentType{}
	for rows.Next() {
		paymentType := &models.PaymentType{}
		err := rows.Scan(&paymentType.ID, &paymentType.Name, &paymentType.Description,
			&paymentType.AmountDefined, &paymentType.IsDeleted)
		if err != nil {
			return nil, err
		}
		types = append(types, paymentType)
	}
	return types, rows.Err()
}

func GetPaymentTypeByID(db *sql.DB, id int64, vis Visibility) (*models.PaymentType, error) {
	query := `SELECT t.id, t.name, t.description, t.amount_defined, t.is_deleted
			  FROM payment_types t
			  WHERE t.id = ? AND ` + vis.where("t")

	paymentType := &models.PaymentType{}
	err := db.QueryRow(query, id).Scan(&paymentType.ID, &paymentType.Name,
		&paymentType.Description, &paymentType.AmountDefined, &paymentType.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return paymentType, nil
}

func CreatePaymentType(db *sql.DB, paymentType *models.PaymentType) (int64, error) {
	query := `INSERT INTO payment_types (name, description, amount_defined)
			  VALUES (?, ?, ?) RETURNING id`
	err := db.QueryRow(query, paymentType.Name, paymentType.Description,
		paymentType.AmountDefined).Scan(&paymentType.ID)
	if err != nil {
		return 0, err
	}
	return paymentType.ID, nil
}

func UpdatePaymentType(db *sql.DB, paymentType *models.PaymentType) (bool, error) {
	query := `UPDATE payment_types SET name = ?, description = ?, amount_defined = ? WHERE id = ?`
	result, err := db.Exec(query, paymentType.Name, paymentType.Description,
		paymentType.AmountDefined, paymentType.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeletePaymentType(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE payment_types SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
