package usecase

import (
	"context"
	"sort"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/tagfilter"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
)

// History lists completed tasks, most recently completed first, keeping only
// those that carry every tag in input.Tags.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, input task.HistoryInput) (task.HistoryOutput, error) {
	now := uc.clock()

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		CreatedByUserID: sc.UserID,
		Completed:       boolPtr(true),
	})
	if err != nil {
		uc.l.Errorf(ctx, "usecase.History: repo.ListTasks: %v", err)
		return task.HistoryOutput{}, err
	}

	required := tagfilter.Normalize(input.Tags)
	kept := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if tagfilter.MatchesTags(t, required) {
			kept = append(kept, t)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i].CompletedAt, kept[j].CompletedAt
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		return a.After(*b)
	})

	out := task.HistoryOutput{Entries: make([]task.HistoryEntry, 0, len(kept)), Count: len(kept)}
	for _, t := range kept {
		out.Entries = append(out.Entries, task.HistoryEntry{
			TaskView: newView(t, now),
			Label:    lateness(t, now),
		})
	}
	return out, nil
}
