package usecase

import (
	"context"
	"time"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/pkg/datemath"
)

// Create validates and stores a new task owned by the scope user.
// Tasks may not start before today; edits are not subject to that rule.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.CreateOutput, error) {
	defer observe("create", time.Now())
	now := uc.clock()

	fields, err := uc.validateFields(input.TaskFields)
	if err != nil {
		createTaskCount.WithLabelValues(statusError).Inc()
		return task.CreateOutput{}, err
	}
	if fields.Date < datemath.DateKey(now) {
		createTaskCount.WithLabelValues(statusError).Inc()
		return task.CreateOutput{}, task.ErrDateInPast
	}

	t := model.Task{
		ID:              uc.newID(),
		Comments:        []model.Comment{},
		CreatedByUserID: sc.UserID,
		AssignedUserIDs: []string{sc.UserID},
	}
	applyFields(&t, fields)

	created, err := uc.repo.CreateTask(ctx, t)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Create: repo.CreateTask: %v", err)
		createTaskCount.WithLabelValues(statusError).Inc()
		return task.CreateOutput{}, err
	}
	createTaskCount.WithLabelValues(statusSuccess).Inc()

	added, err := uc.repo.AddTags(ctx, created.Tags)
	if err != nil {
		// The task is already stored; the vocabulary catches up on the next save.
		uc.l.Warnf(ctx, "usecase.Create: repo.AddTags for task %s: %v", created.ID, err)
	}

	uc.l.Infof(ctx, "Create: user=%s task=%s date=%s", sc.UserID, created.ID, created.Date)
	return task.CreateOutput{TaskView: newView(created, now), AddedTags: added}, nil
}
