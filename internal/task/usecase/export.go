package usecase

import (
	"context"
	"sort"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
)

// Export snapshots the user's tasks ordered by start, with the vocabulary
// and preferences.
func (uc *implUseCase) Export(ctx context.Context, sc model.Scope) (task.ExportOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{CreatedByUserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Export: repo.ListTasks: %v", err)
		return task.ExportOutput{}, err
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Date != tasks[j].Date {
			return tasks[i].Date < tasks[j].Date
		}
		return tasks[i].StartTime < tasks[j].StartTime
	})

	tags, err := uc.repo.ListTags(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Export: repo.ListTags: %v", err)
		return task.ExportOutput{}, err
	}

	visible, err := uc.repo.GetPomodoroVisible(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Export: repo.GetPomodoroVisible: %v", err)
		return task.ExportOutput{}, err
	}

	return task.ExportOutput{Tasks: tasks, Tags: tags, PomodoroVisible: visible}, nil
}
