package models

// Enrollment links a student to one classroom within one school year.
type Enrollment struct {
	ID           int64  `json:"id"`
	StudentID    int64  `json:"student_id" validate:"required"`
	ClassroomID  int64  `json:"classroom_id" validate:"required"`
	SchoolYearID int64  `json:"school_year_id" validate:"required"`
	Status       string `json:"status"`
	IsDeleted    bool   `json:"is_deleted"`

	Student   *Student   `json:"student,omitempty"`
	Classroom *Classroom `json:"classroom,omitempty"`
}
