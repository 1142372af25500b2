package job

import (
	"time"

	"github.com/google/uuid"
)

// Listing is one persisted job posting. ID and CreatedAt are assigned by
// storage on insert and never set by application code.
type Listing struct {
	ID          uuid.UUID
	Title       string
	CompanyName string
	Location    string
	Description *string
	PostingDate time.Time
	SourceURL   string
	CreatedAt   time.Time
}

// Candidate is a synthesized listing before a persistence attempt. It has
// no identity yet; SourceURL is the sole deduplication key.
type Candidate struct {
	Title       string
	CompanyName string
	Location    string
	Description string
	PostingDate time.Time
	SourceURL   string
}

// Filters narrows reads over stored listings. Title and Location are
// case-insensitive substring matches; TimeRangeDays bounds PostingDate to
// the last N days.
type Filters struct {
	JobTitle      string
	Location      string
	TimeRangeDays int
}

func (f Filters) Valid() bool {
	return f.JobTitle != "" && f.Location != "" && f.TimeRangeDays > 0
}

// Since returns the oldest posting date admitted by the recency window,
// truncated to a calendar date in UTC.
func (f Filters) Since(now time.Time) time.Time {
	y, m, d := now.UTC().AddDate(0, 0, -f.TimeRangeDays).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
