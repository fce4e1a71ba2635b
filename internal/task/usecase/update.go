package usecase

import (
	"context"
	"time"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
)

// Update overwrites the editable fields of an existing task. Completion
// state, comments, ownership and pomodoro counters are kept.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.UpdateOutput, error) {
	defer observe("update", time.Now())

	fields, err := uc.validateFields(input.TaskFields)
	if err != nil {
		updateTaskCount.WithLabelValues(statusError).Inc()
		return task.UpdateOutput{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:              input.ID,
		CreatedByUserID: sc.UserID,
		Mutate: func(t *model.Task) error {
			applyFields(t, fields)
			return nil
		},
	})
	if err != nil {
		updateTaskCount.WithLabelValues(statusError).Inc()
		err = mapRepoErr(err)
		if err != task.ErrTaskNotFound {
			uc.l.Errorf(ctx, "usecase.Update: repo.UpdateTask(%s): %v", input.ID, err)
		}
		return task.UpdateOutput{}, err
	}
	updateTaskCount.WithLabelValues(statusSuccess).Inc()

	added, err := uc.repo.AddTags(ctx, updated.Tags)
	if err != nil {
		uc.l.Warnf(ctx, "usecase.Update: repo.AddTags for task %s: %v", updated.ID, err)
	}

	return task.UpdateOutput{TaskView: newView(updated, uc.clock()), AddedTags: added}, nil
}
