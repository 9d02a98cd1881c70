package models

// ============================================================
// Status Check Model
// ============================================================

type StatusCheck struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Timestamp  string `json:"timestamp"`
}
