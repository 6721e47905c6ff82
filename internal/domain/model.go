package domain

import (
	"strings"
	"time"
)

type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Lane identifiers as they appear in the page markup.
const (
	LaneToDo       = "to-do"
	LaneInProgress = "in-progress"
	LaneDone       = "done"
)

type Urgency string

const (
	UrgencyOverdue Urgency = "overdue"
	UrgencyDueSoon Urgency = "due-soon"
	UrgencyNormal  Urgency = "normal"
)

// DateLayout is the storage format of Task.Deadline.
const DateLayout = "2006-01-02"

// pickerLayout is what the deadline date picker submits.
const pickerLayout = "01/02/2006"

type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Status      Status `json:"status"`
}

// StatusForLane maps a drop target lane to the status a task takes there.
// Unknown lanes fall back to not-started.
func StatusForLane(lane string) Status {
	switch lane {
	case LaneInProgress:
		return StatusInProgress
	case LaneDone:
		return StatusCompleted
	default:
		return StatusNotStarted
	}
}

// ParseDate reads a calendar date in either the storage or the picker layout.
// The result is midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{DateLayout, pickerLayout} {
		if d, err := time.ParseInLocation(layout, s, loc); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// NormalizeDate rewrites a recognised date into DateLayout and leaves anything
// else untouched.
func NormalizeDate(s string) string {
	d, ok := ParseDate(s, time.UTC)
	if !ok {
		return s
	}
	return d.Format(DateLayout)
}
