package kv

import (
	"context"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task/repository"
)

func (r *implRepository) loadTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if _, err := r.load(ctx, KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *implRepository) saveTasks(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return r.save(ctx, KeyTasks, tasks)
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.loadTasks(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if opt.CreatedByUserID != "" && t.CreatedByUserID != opt.CreatedByUserID {
			continue
		}
		if opt.Completed != nil && t.Completed != *opt.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *implRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.loadTasks(ctx)
	if err != nil {
		return model.Task{}, err
	}

	i := indexOf(tasks, opt.ID, opt.CreatedByUserID)
	if i < 0 {
		return model.Task{}, nil
	}
	return tasks[i], nil
}

func (r *implRepository) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	if t.ID == "" {
		return model.Task{}, repository.ErrInvalidOption
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.loadTasks(ctx)
	if err != nil {
		return model.Task{}, err
	}

	tasks = append(tasks, t)
	if err := r.saveTasks(ctx, tasks); err != nil {
		return model.Task{}, err
	}

	r.l.Debugf(ctx, "kv.CreateTask: stored task %s (collection size %d)", t.ID, len(tasks))
	return t, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	if opt.Mutate == nil {
		return model.Task{}, repository.ErrInvalidOption
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.loadTasks(ctx)
	if err != nil {
		return model.Task{}, err
	}

	i := indexOf(tasks, opt.ID, opt.CreatedByUserID)
	if i < 0 {
		return model.Task{}, repository.ErrNotFound
	}

	updated := tasks[i]
	if err := opt.Mutate(&updated); err != nil {
		return model.Task{}, err
	}
	// The id is the identity of the record and never changes.
	updated.ID = tasks[i].ID
	tasks[i] = updated

	if err := r.saveTasks(ctx, tasks); err != nil {
		return model.Task{}, err
	}
	return updated, nil
}

func (r *implRepository) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks, err := r.loadTasks(ctx)
	if err != nil {
		return model.Task{}, err
	}

	i := indexOf(tasks, opt.ID, opt.CreatedByUserID)
	if i < 0 {
		return model.Task{}, repository.ErrNotFound
	}

	removed := tasks[i]
	tasks = append(tasks[:i], tasks[i+1:]...)
	if err := r.saveTasks(ctx, tasks); err != nil {
		return model.Task{}, err
	}
	return removed, nil
}

func indexOf(tasks []model.Task, id, owner string) int {
	if id == "" {
		return -1
	}
	for i, t := range tasks {
		if t.ID != id {
			continue
		}
		if owner != "" && t.CreatedByUserID != owner {
			return -1
		}
		return i
	}
	return -1
}
