package models

// User is an application account that records payments, expenses and
// cash register entries. Password holds a bcrypt hash, never plain text.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"-"`
	FullName  string `json:"full_name" validate:"required"`
	RoleID    int64  `json:"role_id" validate:"required"`
	IsDeleted bool   `json:"is_deleted"`

	Role *Role `json:"role,omitempty"` // optional for composed reads
}
