package models

// Role represents a user role (e.g., admin, caissier)
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	IsDeleted   bool   `json:"is_deleted"`
}
