package kv

import (
	"sync"

	"github.com/giorgi26/Planner/internal/task/repository"
	"github.com/giorgi26/Planner/pkg/kvstore"
	pkgLog "github.com/giorgi26/Planner/pkg/log"
)

// Record keys of the persisted documents.
const (
	KeyTasks           = "planner_tasks"
	KeyTags            = "planner_tags"
	KeyPomodoroVisible = "planner_pomodoro_visible"
)

// DefaultTags seeds the vocabulary when no tags record exists yet.
var DefaultTags = []string{
	"work", "meeting", "important", "urgent", "personal",
	"project", "review", "planning", "follow-up", "deadline",
}

type implRepository struct {
	// mu guards every load-modify-save sequence so each write stores a
	// consistent snapshot of its document.
	mu          sync.Mutex
	store       kvstore.Store
	defaultTags []string
	l           pkgLog.Logger
}

// New creates a repository that keeps each collection as one JSON document
// in store. An empty defaultTags falls back to DefaultTags.
func New(store kvstore.Store, defaultTags []string, l pkgLog.Logger) repository.Repository {
	if len(defaultTags) == 0 {
		defaultTags = DefaultTags
	}
	return &implRepository{
		store:       store,
		defaultTags: append([]string(nil), defaultTags...),
		l:           l,
	}
}
