package model

import "time"

// Task is a scheduled block on the planner calendar.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Date and EndDate are YYYY-MM-DD local day keys. An empty EndDate means a single-day task.
	Date    string `json:"date"`
	EndDate string `json:"endDate,omitempty"`

	// StartTime and EndTime are HH:MM 24-hour clocks.
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	Color Color    `json:"color"`
	Tags  []string `json:"tags"`

	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	Comments []Comment `json:"comments"`

	CreatedByUserID string   `json:"createdByUserId"`
	AssignedUserIDs []string `json:"assignedUserIds"`

	// Maintained by the pomodoro timer; TimeSpent is in seconds.
	PomodoroSessions int `json:"pomodoroSessions,omitempty"`
	TimeSpent        int `json:"timeSpent,omitempty"`
}

// End returns the effective last day key of the task.
func (t Task) End() string {
	if t.EndDate == "" {
		return t.Date
	}
	return t.EndDate
}

// IsMultiDay reports whether the task spans more than one calendar day.
func (t Task) IsMultiDay() bool {
	return t.End() != t.Date
}

// HasTag reports whether tag is one of the task's tags.
func (t Task) HasTag(tag string) bool {
	for _, tt := range t.Tags {
		if tt == tag {
			return true
		}
	}
	return false
}

// Comment is a note appended to a task. Comments are never edited or reordered.
type Comment struct {
	AuthorName string    `json:"userName"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// Status is the derived lifecycle state of a task. It is never stored.
type Status string

const (
	StatusActive          Status = "active"
	StatusOverdue         Status = "overdue"
	StatusCompletedOnTime Status = "completed_on_time"
	StatusCompletedLate   Status = "completed_late"
)

// IsCompleted reports whether s is one of the completed states.
func (s Status) IsCompleted() bool {
	return s == StatusCompletedOnTime || s == StatusCompletedLate
}
