package usecase

import (
	"context"
	"time"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
)

// Delete removes a task. When the task was open in the detail panel the
// output asks the caller to close it.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input task.DeleteInput) (task.DeleteOutput, error) {
	defer observe("delete", time.Now())

	removed, err := uc.repo.DeleteTask(ctx, repository.DeleteTaskOptions{
		ID:              input.ID,
		CreatedByUserID: sc.UserID,
	})
	if err != nil {
		err = mapRepoErr(err)
		if err != task.ErrTaskNotFound {
			uc.l.Errorf(ctx, "usecase.Delete: repo.DeleteTask(%s): %v", input.ID, err)
		}
		return task.DeleteOutput{}, err
	}
	deleteTaskCount.Inc()

	uc.l.Infof(ctx, "Delete: user=%s task=%s", sc.UserID, removed.ID)
	return task.DeleteOutput{ClosePanel: input.OpenTaskID != "" && input.OpenTaskID == removed.ID}, nil
}
