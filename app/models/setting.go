package models

// Setting is a key/value configuration row with upsert semantics on Key.
type Setting struct {
	ID          int64  `json:"id"`
	Key         string `json:"key" validate:"required"`
	Value       string `json:"value"`
	Description string `json:"description"`
}
