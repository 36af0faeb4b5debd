package database

import (
	"database/sql"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

func GetAllExpenses(db *sql.DB, vis Visibility) ([]*models.Expense, error) {
	query := `SELECT e.id, e.school_year_id, e.expense_date, e.description, e.amount, e.user_id, e.is_deleted
			  FROM expenses e
			  WHERE ` + vis.where("e") + `
			  ORDER BY e.expense_date DESC, e.id DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*models.Expense{}
	for rows.Next() {
		expense := &models.Expense{}
		err := rows.Scan(&expense.ID, &expense.SchoolYearID, &expense.ExpenseDate,
			&expense.Description, &expense.Amount, &expense.UserID, &expense.IsDeleted)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func GetExpenseByID(db *sql.DB, id int64, vis Visibility) (*models.Expense, error) {
	query := `SELECT e.id, e.school_year_id, e.expense_date, e.description, e.amount, e.user_id, e.is_deleted
			  FROM expenses e
			  WHERE e.id = ? AND ` + vis.where("e")

	expense := &models.Expense{}
	err := db.QueryRow(query, id).Scan(&expense.ID, &expense.SchoolYearID, &expense.ExpenseDate,
		&expense.Description, &expense.Amount, &expense.UserID, &expense.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return expense, nil
}

func UpdateExpense(db *sql.DB, expense *models.Expense) (bool, error) {
	query := `UPDATE expenses
			  SET school_year_id = ?, expense_date = ?, description = ?, amount = ?, user_id = ?
			  WHERE id = ?`
	result, err := db.Exec(query, expense.SchoolYearID, expense.ExpenseDate,
		expense.Description, expense.Amount, expense.UserID, expense.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeleteExpense(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE expenses SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
