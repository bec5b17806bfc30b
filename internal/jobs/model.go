package jobs

import "time"

// JobDescription is a saved job posting owned by a user.
type JobDescription struct {
	ID           string
	UserID       string
	Title        string
	Company      string
	Description  string
	Requirements string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
