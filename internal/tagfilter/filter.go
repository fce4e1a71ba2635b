package tagfilter

import (
	"time"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/schedule"
	"github.com/giorgi26/Planner/pkg/datemath"
)

// StatusFilter is the calendar status selector.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusActive    StatusFilter = "active"
	StatusCompleted StatusFilter = "completed"
	StatusOverdue   StatusFilter = "overdue"
)

// Valid reports whether f is a known selector. The empty value means all.
func (f StatusFilter) Valid() bool {
	switch f {
	case "", StatusAll, StatusActive, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

// MatchesTags reports whether the task carries every required tag.
func MatchesTags(t model.Task, required []string) bool {
	for _, tag := range required {
		if !t.HasTag(tag) {
			return false
		}
	}
	return true
}

// MatchesStatus reports whether the task passes the status selector at now.
//
// "active" is a display rule, not the derived status: it also hides tasks
// whose first day is after today.
func MatchesStatus(t model.Task, f StatusFilter, now time.Time) bool {
	switch f {
	case StatusActive:
		today := datemath.DateKey(now)
		return !t.Completed && schedule.Status(t, now) != model.StatusOverdue && t.Date <= today
	case StatusCompleted:
		return t.Completed
	case StatusOverdue:
		return schedule.Status(t, now) == model.StatusOverdue
	default:
		return true
	}
}

// Apply keeps the tasks that pass both the status selector and the tag set.
// Input order is preserved.
func Apply(tasks []model.Task, f StatusFilter, required []string, now time.Time) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if !MatchesStatus(t, f, now) {
			continue
		}
		if !MatchesTags(t, required) {
			continue
		}
		out = append(out, t)
	}
	return out
}
