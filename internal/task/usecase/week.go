package usecase

import (
	"context"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/schedule"
	"github.com/giorgi26/Planner/internal/tagfilter"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
	"github.com/giorgi26/Planner/pkg/datemath"
)

// Week lays out the Monday-to-Sunday window containing input.Date.
// Completed tasks are not drawn on the calendar.
func (uc *implUseCase) Week(ctx context.Context, sc model.Scope, input task.WeekInput) (task.WeekOutput, error) {
	now := uc.clock()

	base, err := uc.dateMath.Parse(input.Date, now)
	if err != nil {
		return task.WeekOutput{}, task.ErrInvalidDate
	}

	filter, err := validateFilter(input.Filter)
	if err != nil {
		return task.WeekOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		CreatedByUserID: sc.UserID,
		Completed:       boolPtr(false),
	})
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Week: repo.ListTasks: %v", err)
		return task.WeekOutput{}, err
	}
	visible := tagfilter.Apply(tasks, filter.Status, filter.Tags, now)

	days := datemath.WeekDays(base)
	today := datemath.DateKey(now)

	out := task.WeekOutput{
		Label: datemath.WeekLabel(days),
		Days:  make([]task.Day, 0, len(days)),
		Prev:  datemath.DateKey(datemath.ShiftWeeks(days[0], -1)),
		Next:  datemath.DateKey(datemath.ShiftWeeks(days[0], 1)),
	}
	for _, d := range days {
		key := datemath.DateKey(d)
		day := task.Day{
			Key:     key,
			Weekday: d.Weekday().String(),
			IsToday: key == today,
			Tasks:   []task.CalendarTask{},
		}
		for _, t := range visible {
			if !schedule.OnDay(t, key) {
				continue
			}
			day.Tasks = append(day.Tasks, task.CalendarTask{
				TaskView:  newView(t, now),
				Segment:   schedule.SegmentOn(t, key),
				Geometry:  schedule.Layout(t, key),
				TimeLabel: schedule.TimeLabel(t, key),
			})
		}
		out.Days = append(out.Days, day)
	}

	return out, nil
}
