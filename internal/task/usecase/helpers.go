package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/schedule"
	"github.com/giorgi26/Planner/internal/tagfilter"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
	"github.com/giorgi26/Planner/pkg/datemath"
)

// validateFields checks the shape of user-editable fields and the
// end-not-before-start rule. It returns the fields in canonical form.
func (uc *implUseCase) validateFields(f task.TaskFields) (task.TaskFields, error) {
	loc := uc.dateMath.Location()

	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return f, task.ErrEmptyTitle
	}

	f.Date = strings.TrimSpace(f.Date)
	f.EndDate = strings.TrimSpace(f.EndDate)
	if _, err := datemath.ParseDateKey(f.Date, loc); err != nil {
		return f, task.ErrInvalidDate
	}
	if f.EndDate != "" {
		if _, err := datemath.ParseDateKey(f.EndDate, loc); err != nil {
			return f, task.ErrInvalidDate
		}
	}

	f.StartTime = strings.TrimSpace(f.StartTime)
	f.EndTime = strings.TrimSpace(f.EndTime)
	if _, err := datemath.ParseClock(f.StartTime); err != nil {
		return f, task.ErrInvalidTime
	}
	if _, err := datemath.ParseClock(f.EndTime); err != nil {
		return f, task.ErrInvalidTime
	}

	if f.Color == "" {
		f.Color = model.DefaultColor
	}
	if !f.Color.Valid() {
		return f, task.ErrInvalidColor
	}

	f.Tags = tagfilter.Normalize(f.Tags)

	end := f.EndDate
	if end == "" {
		end = f.Date
	}
	startAt, _ := datemath.Combine(f.Date, f.StartTime, loc)
	endAt, _ := datemath.Combine(end, f.EndTime, loc)
	if endAt.Before(startAt) {
		return f, task.ErrEndBeforeStart
	}

	return f, nil
}

// validateFilter checks the calendar filter and normalizes its tags.
func validateFilter(f task.Filter) (task.Filter, error) {
	if !f.Status.Valid() {
		return f, task.ErrInvalidStatus
	}
	if f.Status == "" {
		f.Status = tagfilter.StatusAll
	}
	f.Tags = tagfilter.Normalize(f.Tags)
	return f, nil
}

func applyFields(t *model.Task, f task.TaskFields) {
	t.Title = f.Title
	t.Description = f.Description
	t.Date = f.Date
	t.EndDate = f.EndDate
	t.StartTime = f.StartTime
	t.EndTime = f.EndTime
	t.Color = f.Color
	t.Tags = f.Tags
}

func newView(t model.Task, now time.Time) task.TaskView {
	return task.TaskView{Task: t, Status: schedule.Status(t, now)}
}

// mapRepoErr turns repository lookups that missed into the domain error.
func mapRepoErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	return err
}

func observe(operation string, startedAt time.Time) {
	operationDuration.WithLabelValues(operation).Observe(time.Since(startedAt).Seconds())
}

func boolPtr(b bool) *bool {
	return &b
}
