package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
	"github.com/giorgi26/Planner/internal/task/repository/kv"
	"github.com/giorgi26/Planner/pkg/datemath"
	"github.com/giorgi26/Planner/pkg/kvstore"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// testNow is Wednesday 2025-03-12 10:00 UTC.
var testNow = time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

var testScope = model.Scope{UserID: "u1", UserName: "Ada"}

// settableClock lets a test move time forward.
type settableClock struct{ t time.Time }

func (c *settableClock) Now() time.Time { return c.t }

// newTestUseCase wires the use case to an in-memory store, a UTC date parser
// and a clock pinned at testNow. IDs are sequential.
func newTestUseCase(t *testing.T) (*implUseCase, *settableClock) {
	t.Helper()

	dm, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	repo := kv.New(kvstore.NewMemory(), nil, &mockLogger{})

	uc := New(&mockLogger{}, repo, dm)
	clock := &settableClock{t: testNow}
	uc.now = clock.Now

	seq := 0
	uc.newID = func() string {
		seq++
		return fmt.Sprintf("task-%d", seq)
	}
	return uc, clock
}

func fields(title, date, endDate, start, end string, tags ...string) task.TaskFields {
	return task.TaskFields{
		Title:     title,
		Date:      date,
		EndDate:   endDate,
		StartTime: start,
		EndTime:   end,
		Tags:      tags,
	}
}

func mustCreate(t *testing.T, uc *implUseCase, f task.TaskFields) model.Task {
	t.Helper()
	out, err := uc.Create(context.Background(), testScope, task.CreateInput{TaskFields: f})
	if err != nil {
		t.Fatalf("Create(%q): %v", f.Title, err)
	}
	return out.Task
}

// failingRepo fails every collection read with err.
type failingRepo struct {
	repository.Repository
	err error
}

func (r failingRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	return nil, r.err
}

func (r failingRepo) ListTags(ctx context.Context) ([]string, error) {
	return nil, r.err
}
