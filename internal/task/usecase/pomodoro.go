package usecase

import (
	"context"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
)

// RecordPomodoro credits a finished focus session to a task.
func (uc *implUseCase) RecordPomodoro(ctx context.Context, sc model.Scope, input task.RecordPomodoroInput) (task.DetailOutput, error) {
	if input.Seconds < 0 {
		return task.DetailOutput{}, task.ErrInvalidDuration
	}

	t, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:              input.ID,
		CreatedByUserID: sc.UserID,
		Mutate: func(t *model.Task) error {
			t.PomodoroSessions++
			t.TimeSpent += input.Seconds
			return nil
		},
	})
	if err != nil {
		err = mapRepoErr(err)
		if err != task.ErrTaskNotFound {
			uc.l.Errorf(ctx, "usecase.RecordPomodoro: repo.UpdateTask(%s): %v", input.ID, err)
		}
		return task.DetailOutput{}, err
	}

	return task.DetailOutput{TaskView: newView(t, uc.clock())}, nil
}

// Preferences returns the persisted UI preferences.
func (uc *implUseCase) Preferences(ctx context.Context, sc model.Scope) (task.PreferencesOutput, error) {
	visible, err := uc.repo.GetPomodoroVisible(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Preferences: repo.GetPomodoroVisible: %v", err)
		return task.PreferencesOutput{}, err
	}
	return task.PreferencesOutput{PomodoroVisible: visible}, nil
}

// TogglePomodoro flips the pomodoro widget visibility.
func (uc *implUseCase) TogglePomodoro(ctx context.Context, sc model.Scope) (task.PreferencesOutput, error) {
	prefs, err := uc.Preferences(ctx, sc)
	if err != nil {
		return task.PreferencesOutput{}, err
	}

	visible := !prefs.PomodoroVisible
	if err := uc.repo.SetPomodoroVisible(ctx, visible); err != nil {
		uc.l.Errorf(ctx, "usecase.TogglePomodoro: repo.SetPomodoroVisible: %v", err)
		return task.PreferencesOutput{}, err
	}
	return task.PreferencesOutput{PomodoroVisible: visible}, nil
}
