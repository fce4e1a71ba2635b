package repository

import "github.com/giorgi26/Planner/internal/model"

// ListTasksOptions filters ListTasks. Zero values match everything.
type ListTasksOptions struct {
	CreatedByUserID string
	Completed       *bool
}

// GetOneTaskOptions selects a single task. A non-empty CreatedByUserID hides
// tasks owned by other users.
type GetOneTaskOptions struct {
	ID              string
	CreatedByUserID string
}

// UpdateTaskOptions selects a task and the change to apply to it. Mutate runs
// while the collection is locked; returning an error aborts the write.
type UpdateTaskOptions struct {
	ID              string
	CreatedByUserID string
	Mutate          func(t *model.Task) error
}

// DeleteTaskOptions selects the task to remove.
type DeleteTaskOptions struct {
	ID              string
	CreatedByUserID string
}
