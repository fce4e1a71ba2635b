package usecase

import (
	"context"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
)

// Detail returns a single task with its current status.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.DetailOutput, error) {
	t, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{
		ID:              id,
		CreatedByUserID: sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Detail: repo.GetOneTask(%s): %v", id, err)
		return task.DetailOutput{}, err
	}
	if t.ID == "" {
		return task.DetailOutput{}, task.ErrTaskNotFound
	}

	return task.DetailOutput{TaskView: newView(t, uc.clock())}, nil
}
