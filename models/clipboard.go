package models

import "time"

// ClipboardEvent is emitted every time a secret is copied with an auto-clear
// timer, so the UI can show a "copied, clearing in Ns" indicator.
type ClipboardEvent struct {
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}
