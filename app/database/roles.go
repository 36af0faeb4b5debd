package database

import (
	"database/sql"

	"github.com/Victoire243/iSchool-sub000/app/models"
)

func GetAllRoles(db *sql.DB, vis Visibility) ([]*models.Role, error) {
	query := `SELECT r.id, r.name, r.description, r.is_deleted
			  FROM roles r
			  WHERE ` + vis.where("r") + `
			  ORDER BY r.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []*models.Role{}
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.IsDeleted); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func GetRoleByID(db *sql.DB, id int64, vis Visibility) (*models.Role, error) {
	query := `SELECT r.id, r.name, r.description, r.is_deleted
			  FROM roles r
			  WHERE r.id = ? AND ` + vis.where("r")

	role := &models.Role{}
	err := db.QueryRow(query, id).Scan(&role.ID, &role.Name, &role.Description, &role.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return role, nil
}

func CreateRole(db *sql.DB, role *models.Role) (int64, error) {
	query := `INSERT INTO roles (name, description) VALUES (?, ?) RETURNING id`
	err := db.QueryRow(query, role.Name, role.Description).Scan(&role.ID)
	if err != nil {
		return 0, err
	}
	return role.ID, nil
}

func UpdateRole(db *sql.DB, role *models.Role) (bool, error) {
	query := `UPDATE roles SET name = ?, description = ? WHERE id = ?`
	result, err := db.Exec(query, role.Name, role.Description, role.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteRole soft deletes a role. Deleting an already-deleted role is a
// no-op that still reports success.
func DeleteRole(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE roles SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
