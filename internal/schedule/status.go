// Package schedule derives time-dependent views of a task: its lifecycle
// status and its placement inside a calendar day column.
package schedule

import (
	"time"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/pkg/datemath"
)

// ScheduledEnd returns the local instant the task is due to finish.
func ScheduledEnd(t model.Task, loc *time.Location) (time.Time, error) {
	return datemath.Combine(t.End(), t.EndTime, loc)
}

// Status derives the task's state at now. It has no side effects; callers
// must pass a freshly sampled now on every query.
//
// A task whose end cannot be parsed is never reported late or overdue.
func Status(t model.Task, now time.Time) model.Status {
	end, err := ScheduledEnd(t, now.Location())

	if t.Completed {
		if err == nil && t.CompletedAt != nil && t.CompletedAt.After(end) {
			return model.StatusCompletedLate
		}
		return model.StatusCompletedOnTime
	}

	if err == nil && now.After(end) {
		return model.StatusOverdue
	}
	return model.StatusActive
}
