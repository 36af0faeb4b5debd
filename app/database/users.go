package database

import (
	"database/sql"

	"github.com/Victoire243/iSchool-sub000/app/models"
	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func GetAllUsers(db *sql.DB, vis Visibility) ([]*models.User, error) {
	query := `SELECT u.id, u.username, u.password, u.full_name, u.role_id, u.is_deleted, r.name
			  FROM users u
			  LEFT JOIN roles r ON u.role_id = r.id AND ` + vis.where("r") + `
			  WHERE ` + vis.where("u") + `
			  ORDER BY u.username`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		user := &models.User{}
		var roleName sql.NullString
		err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.FullName,
			&user.RoleID, &user.IsDeleted, &roleName)
		if err != nil {
			return nil, err
		}
		if roleName.Valid {
			user.Role = &models.Role{ID: user.RoleID, Name: roleName.String}
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func GetUserByID(db *sql.DB, id int64, vis Visibility) (*models.User, error) {
	query := `SELECT u.id, u.username, u.password, u.full_name, u.role_id, u.is_deleted
			  FROM users u
			  WHERE u.id = ? AND ` + vis.where("u")

	user := &models.User{}
	err := db.QueryRow(query, id).Scan(&user.ID, &user.Username, &user.Password,
		&user.FullName, &user.RoleID, &user.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByUsername(db *sql.DB, username string, vis Visibility) (*models.User, error) {
	query := `SELECT u.id, u.username, u.password, u.full_name, u.role_id, u.is_deleted
			  FROM users u
			  WHERE u.username = ? AND ` + vis.where("u")

	user := &models.User{}
	err := db.QueryRow(query, username).Scan(&user.ID, &user.Username, &user.Password,
		&user.FullName, &user.RoleID, &user.IsDeleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser inserts a user, hashing the plain-text password first.
func CreateUser(db *sql.DB, user *models.User) (int64, error) {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return 0, err
	}
	user.Password = hashed

	query := `INSERT INTO users (username, password, full_name, role_id) VALUES (?, ?, ?, ?) RETURNING id`
	err = db.QueryRow(query, user.Username, user.Password, user.FullName, user.RoleID).Scan(&user.ID)
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// UpdateUser replaces the mutable fields of a user. The password is left
// untouched; use UpdateUserPassword for that.
func UpdateUser(db *sql.DB, user *models.User) (bool, error) {
	query := `UPDATE users SET username = ?, full_name = ?, role_id = ? WHERE id = ?`
	result, err := db.Exec(query, user.Username, user.FullName, user.RoleID, user.ID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func UpdateUserPassword(db *sql.DB, userID int64, password string) (bool, error) {
	hashed, err := hashPassword(password)
	if err != nil {
		return false, err
	}
	result, err := db.Exec(`UPDATE users SET password = ? WHERE id = ?`, hashed, userID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func DeleteUser(db *sql.DB, id int64) (bool, error) {
	result, err := db.Exec(`UPDATE users SET is_deleted = 1 WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
