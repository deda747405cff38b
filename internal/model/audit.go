package model

import "time"

// AuditLogEntry is an append-only record of a mutating action. The
// application only inserts and reads these rows, never updates or deletes.
type AuditLogEntry struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	ReferenceID string    `json:"reference_id"`
	Module      string    `json:"module"`
	Notes       string    `json:"notes"`
	Timestamp   time.Time `json:"timestamp"`
}
