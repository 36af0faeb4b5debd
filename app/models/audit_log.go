package models

// AuditLogEntry is an append-only record of a user action.
type AuditLogEntry struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Action    string `json:"action"`
	TableName string `json:"table_name"`
	RecordID  int64  `json:"record_id"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details"`
}
