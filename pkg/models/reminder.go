package models

import "time"

// Reminder represents the structure for a reminder.
// The JSON tags define the persisted record layout; Time round-trips as an
// RFC 3339 timestamp carrying the reference time zone offset.
type Reminder struct {
	ID    int       `json:"id"`
	Text  string    `json:"text"`
	Time  time.Time `json:"time"`
	JobID string    `json:"job_id"`
}
