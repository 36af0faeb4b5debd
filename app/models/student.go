package models

// Student represents an enrolled or formerly enrolled pupil.
// All dates are stored as YYYY-MM-DD text.
type Student struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Surname       string `json:"surname"`
	Gender        string `json:"gender" validate:"omitempty,oneof=M F"`
	DateOfBirth   string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Address       string `json:"address"`
	ParentContact string `json:"parent_contact"`
	IsDeleted     bool   `json:"is_deleted"`
}
