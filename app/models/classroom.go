package models

// Classroom represents a class (e.g., "1ère Primaire A").
type Classroom struct {
	ID        int64  `json:"id"`
	Name      string `json:"name" validate:"required"`
	Level     string `json:"level"`
	IsDeleted bool   `json:"is_deleted"`
}
