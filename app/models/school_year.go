package models

// SchoolYear represents an academic year (e.g., "2024-2025").
// At most one non-deleted row has IsActive = true.
type SchoolYear struct {
	ID        int64  `json:"id"`
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	IsActive  bool   `json:"is_active"`
	IsDeleted bool   `json:"is_deleted"`
}
