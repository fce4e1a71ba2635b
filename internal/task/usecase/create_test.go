package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/task"
)

func TestCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		fields  task.TaskFields
		wantErr error
	}{
		{"today", fields("Standup", "2025-03-12", "", "09:00", "09:15"), nil},
		{"future multi-day", fields("Offsite", "2025-03-14", "2025-03-16", "14:00", "08:00"), nil},
		{"yesterday", fields("Late", "2025-03-11", "", "09:00", "10:00"), task.ErrDateInPast},
		{"end before start", fields("Backwards", "2025-03-12", "", "10:00", "09:00"), task.ErrEndBeforeStart},
		{"end date before start date", fields("Backwards", "2025-03-14", "2025-03-13", "09:00", "10:00"), task.ErrEndBeforeStart},
		{"zero length", fields("Instant", "2025-03-12", "", "10:00", "10:00"), nil},
		{"blank title", fields("   ", "2025-03-12", "", "09:00", "10:00"), task.ErrEmptyTitle},
		{"bad date", fields("Bad", "12/03/2025", "", "09:00", "10:00"), task.ErrInvalidDate},
		{"bad time", fields("Bad", "2025-03-12", "", "9am", "10:00"), task.ErrInvalidTime},
		{"hour out of range", fields("Bad", "2025-03-12", "", "09:00", "24:00"), task.ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t)
			out, err := uc.Create(ctx, testScope, task.CreateInput{TaskFields: tt.fields})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				all, _ := uc.repo.ListTasks(ctx, listAll())
				if len(all) != 0 {
					t.Errorf("rejected create must not store anything, found %d tasks", len(all))
				}
				return
			}
			if out.Task.ID == "" {
				t.Error("expected an id to be assigned")
			}
		})
	}
}

func TestCreateDefaults(t *testing.T) {
	uc, _ := newTestUseCase(t)

	created := mustCreate(t, uc, fields("Plan sprint", "2025-03-13", "", "09:00", "10:00", " Planning ", "planning", "Errand"))

	if created.Color != model.DefaultColor {
		t.Errorf("expected default color, got %q", created.Color)
	}
	if created.Completed || created.CompletedAt != nil {
		t.Error("new task must not be completed")
	}
	if created.Comments == nil || len(created.Comments) != 0 {
		t.Errorf("expected empty comment list, got %v", created.Comments)
	}
	if created.CreatedByUserID != "u1" || len(created.AssignedUserIDs) != 1 || created.AssignedUserIDs[0] != "u1" {
		t.Errorf("unexpected ownership %q %v", created.CreatedByUserID, created.AssignedUserIDs)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "planning" || created.Tags[1] != "errand" {
		t.Errorf("expected normalized tags, got %v", created.Tags)
	}

	vocab, _ := uc.Vocabulary(context.Background(), testScope)
	if vocab.Tags[len(vocab.Tags)-1] != "errand" {
		t.Errorf("expected new tag in vocabulary, got %v", vocab.Tags)
	}
}

func TestCreateInvalidColor(t *testing.T) {
	uc, _ := newTestUseCase(t)
	f := fields("Paint", "2025-03-12", "", "09:00", "10:00")
	f.Color = "teal"
	if _, err := uc.Create(context.Background(), testScope, task.CreateInput{TaskFields: f}); !errors.Is(err, task.ErrInvalidColor) {
		t.Errorf("expected ErrInvalidColor, got %v", err)
	}
}

func TestCreateMetrics(t *testing.T) {
	uc, _ := newTestUseCase(t)

	success := testutil.ToFloat64(createTaskCount.WithLabelValues(statusSuccess))
	failed := testutil.ToFloat64(createTaskCount.WithLabelValues(statusError))

	mustCreate(t, uc, fields("Ok", "2025-03-12", "", "09:00", "10:00"))
	uc.Create(context.Background(), testScope, task.CreateInput{TaskFields: fields("Past", "2025-01-01", "", "09:00", "10:00")})

	if got := testutil.ToFloat64(createTaskCount.WithLabelValues(statusSuccess)) - success; got != 1 {
		t.Errorf("expected 1 success, got %v", got)
	}
	if got := testutil.ToFloat64(createTaskCount.WithLabelValues(statusError)) - failed; got != 1 {
		t.Errorf("expected 1 error, got %v", got)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	uc, clock := newTestUseCase(t)

	created := mustCreate(t, uc, fields("Draft", "2025-03-12", "", "09:00", "10:00"))
	uc.AddComment(ctx, testScope, task.AddCommentInput{ID: created.ID, Text: "first"})
	uc.Complete(ctx, testScope, created.ID)

	// A week later the task lies in the past but can still be edited.
	clock.t = testNow.AddDate(0, 0, 7)
	f := fields("Final", "2025-03-12", "", "08:00", "11:00", "review")
	f.Color = model.ColorGreen
	out, err := uc.Update(ctx, testScope, task.UpdateInput{ID: created.ID, TaskFields: f})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	got := out.Task
	if got.Title != "Final" || got.StartTime != "08:00" || got.Color != model.ColorGreen {
		t.Errorf("fields not overwritten: %+v", got)
	}
	if !got.Completed || got.CompletedAt == nil {
		t.Error("completion must be preserved by update")
	}
	if len(got.Comments) != 1 || got.CreatedByUserID != "u1" {
		t.Errorf("comments/owner must be preserved: %+v", got)
	}

	if _, err := uc.Update(ctx, testScope, task.UpdateInput{ID: created.ID, TaskFields: fields("Final", "2025-03-12", "", "11:00", "08:00")}); !errors.Is(err, task.ErrEndBeforeStart) {
		t.Errorf("expected ErrEndBeforeStart, got %v", err)
	}

	if _, err := uc.Update(ctx, testScope, task.UpdateInput{ID: "missing", TaskFields: f}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestOtherUsersTasksAreHidden(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t)
	created := mustCreate(t, uc, fields("Mine", "2025-03-12", "", "09:00", "10:00"))

	other := model.Scope{UserID: "u2", UserName: "Bob"}
	if _, err := uc.Detail(ctx, other, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Detail: expected ErrTaskNotFound, got %v", err)
	}
	if _, err := uc.Delete(ctx, other, task.DeleteInput{ID: created.ID}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Delete: expected ErrTaskNotFound, got %v", err)
	}
	week, _ := uc.Week(ctx, other, task.WeekInput{})
	for _, d := range week.Days {
		if len(d.Tasks) != 0 {
			t.Errorf("u2 should see no tasks on %s", d.Key)
		}
	}
}
