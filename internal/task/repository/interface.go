package repository

import (
	"context"

	"github.com/giorgi26/Planner/internal/model"
)

// TaskRepository persists the task collection.
type TaskRepository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	// GetOneTask returns a zero Task (empty ID) when nothing matches.
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	CreateTask(ctx context.Context, t model.Task) (model.Task, error)
	// UpdateTask returns ErrNotFound when nothing matches.
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	// DeleteTask returns ErrNotFound when nothing matches.
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) (model.Task, error)
}

// TagRepository persists the tag vocabulary.
type TagRepository interface {
	// ListTags returns the vocabulary, seeded with the default tags on first use.
	ListTags(ctx context.Context) ([]string, error)
	// AddTags merges tags into the vocabulary and returns the new entries.
	AddTags(ctx context.Context, tags []string) ([]string, error)
	// RemoveTag returns ErrNotFound when tag is not in the vocabulary.
	RemoveTag(ctx context.Context, tag string) ([]string, error)
}

// PreferenceRepository persists UI preferences.
type PreferenceRepository interface {
	GetPomodoroVisible(ctx context.Context) (bool, error)
	SetPomodoroVisible(ctx context.Context, visible bool) error
}

// Repository is everything the planner use case persists.
type Repository interface {
	TaskRepository
	TagRepository
	PreferenceRepository
}
