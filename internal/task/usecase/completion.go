package usecase

import (
	"context"
	"time"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/schedule"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
)

// Complete marks a task done and stamps the completion time. Completing an
// already completed task changes nothing.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, id string) (task.CompletionOutput, error) {
	defer observe("complete", time.Now())
	now := uc.clock()

	changed := false
	t, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:              id,
		CreatedByUserID: sc.UserID,
		Mutate: func(t *model.Task) error {
			if t.Completed {
				return nil
			}
			changed = true
			markCompleted(t, now)
			return nil
		},
	})
	if err != nil {
		return task.CompletionOutput{}, uc.completionErr(ctx, "Complete", id, err)
	}

	out := task.CompletionOutput{TaskView: newView(t, now), Changed: changed}
	if changed {
		completedTaskCount.WithLabelValues(string(out.Status)).Inc()
	}
	return out, nil
}

// ToggleCompletion flips the completed flag, stamping or clearing the
// completion time accordingly.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, sc model.Scope, id string) (task.CompletionOutput, error) {
	defer observe("toggle", time.Now())
	now := uc.clock()

	t, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:              id,
		CreatedByUserID: sc.UserID,
		Mutate: func(t *model.Task) error {
			if t.Completed {
				t.Completed = false
				t.CompletedAt = nil
				return nil
			}
			markCompleted(t, now)
			return nil
		},
	})
	if err != nil {
		return task.CompletionOutput{}, uc.completionErr(ctx, "ToggleCompletion", id, err)
	}

	out := task.CompletionOutput{TaskView: newView(t, now), Changed: true}
	if t.Completed {
		completedTaskCount.WithLabelValues(string(out.Status)).Inc()
	}
	return out, nil
}

func markCompleted(t *model.Task, now time.Time) {
	at := now
	t.Completed = true
	t.CompletedAt = &at
}

func (uc *implUseCase) completionErr(ctx context.Context, op, id string, err error) error {
	err = mapRepoErr(err)
	if err != task.ErrTaskNotFound {
		uc.l.Errorf(ctx, "usecase.%s: repo.UpdateTask(%s): %v", op, id, err)
	}
	return err
}

// lateness reports the completion label shown in the history list.
func lateness(t model.Task, now time.Time) string {
	if schedule.Status(t, now) == model.StatusCompletedLate {
		return "Completed Late"
	}
	return "On Time"
}
