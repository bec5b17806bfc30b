package resumes

import "time"

// Resume represents an uploaded resume owned by a user. ExtractedText stays
// nil until a text extraction pipeline exists; prompts substitute a
// placeholder in the meantime.
type Resume struct {
	ID            string
	UserID        string
	Title         string
	FileName      string
	FilePath      string
	FileSize      int64
	ExtractedText *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
