package usecase

import (
	"context"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/tagfilter"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
	"github.com/giorgi26/Planner/pkg/datemath"
)

// Agenda splits open tasks into those spanning today and those starting later.
func (uc *implUseCase) Agenda(ctx context.Context, sc model.Scope, input task.AgendaInput) (task.AgendaOutput, error) {
	now := uc.clock()

	filter, err := validateFilter(input.Filter)
	if err != nil {
		return task.AgendaOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		CreatedByUserID: sc.UserID,
		Completed:       boolPtr(false),
	})
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Agenda: repo.ListTasks: %v", err)
		return task.AgendaOutput{}, err
	}

	today := datemath.DateKey(now)
	out := task.AgendaOutput{Today: []task.TaskView{}, Upcoming: []task.TaskView{}}
	for _, t := range tagfilter.Apply(tasks, filter.Status, filter.Tags, now) {
		switch {
		case t.Date <= today && today <= t.End():
			out.Today = append(out.Today, newView(t, now))
		case t.Date > today:
			out.Upcoming = append(out.Upcoming, newView(t, now))
		}
	}
	return out, nil
}
