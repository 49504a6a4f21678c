package domain

import (
	"strings"
	"time"
)

// PlaceholderTaskName labels sessions committed without a task name.
const PlaceholderTaskName = "Untitled task"

const (
	DateLayout      = "2006-01-02"
	StartTimeLayout = "15:04"
)

type RecordID string

// SessionRecord is one committed stretch of timer activity. Records are
// immutable once created; the history log only ever prepends, deletes, or
// rewrites task names in bulk.
type SessionRecord struct {
	ID         RecordID `json:"id"`
	Date       string   `json:"date"`
	StartTime  string   `json:"start_time"`
	TaskName   string   `json:"task_name"`
	DurationMs int64    `json:"duration_ms"`
}

// NewSessionRecord stamps a committed session. Date and start time are
// derived from the commit instant: start time is commit minus duration, and
// the whole duration is attributed to the commit date even when the session
// started before local midnight.
func NewSessionRecord(id RecordID, taskName string, durationMs int64, committedAt time.Time) SessionRecord {
	name := strings.TrimSpace(taskName)
	if name == "" {
		name = PlaceholderTaskName
	}

	startedAt := committedAt.Add(-time.Duration(durationMs) * time.Millisecond)

	return SessionRecord{
		ID:         id,
		Date:       committedAt.Format(DateLayout),
		StartTime:  startedAt.Format(StartTimeLayout),
		TaskName:   name,
		DurationMs: durationMs,
	}
}
