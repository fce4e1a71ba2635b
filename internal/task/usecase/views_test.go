package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/schedule"
	"github.com/giorgi26/Planner/internal/tagfilter"
	"github.com/giorgi26/Planner/internal/task"
)

func TestWeek(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t)

	mustCreate(t, uc, fields("Standup", "2025-03-12", "", "09:00", "10:30", "meeting"))
	mustCreate(t, uc, fields("Offsite", "2025-03-14", "2025-03-17", "14:00", "08:00", "work"))
	done := mustCreate(t, uc, fields("Done", "2025-03-13", "", "09:00", "10:00"))
	uc.Complete(ctx, testScope, done.ID)

	out, err := uc.Week(ctx, testScope, task.WeekInput{})
	if err != nil {
		t.Fatalf("Week: %v", err)
	}

	if len(out.Days) != 7 || out.Days[0].Key != "2025-03-10" || out.Days[6].Key != "2025-03-16" {
		t.Fatalf("unexpected window %v..%v", out.Days[0].Key, out.Days[len(out.Days)-1].Key)
	}
	if out.Days[0].Weekday != "Monday" {
		t.Errorf("expected Monday first, got %s", out.Days[0].Weekday)
	}
	if out.Label != "Mar 10 - Mar 16, 2025" {
		t.Errorf("unexpected label %q", out.Label)
	}
	if out.Prev != "2025-03-03" || out.Next != "2025-03-17" {
		t.Errorf("unexpected navigation %s / %s", out.Prev, out.Next)
	}
	if !out.Days[2].IsToday {
		t.Error("Wednesday should be today")
	}

	wed := out.Days[2].Tasks
	if len(wed) != 1 || wed[0].Geometry != (schedule.Geometry{TopMinutes: 540, HeightMinutes: 90}) {
		t.Fatalf("unexpected Wednesday cards %+v", wed)
	}
	if wed[0].TimeLabel != "09:00 - 10:30" || wed[0].Segment != schedule.SegmentSingle {
		t.Errorf("unexpected card %+v", wed[0])
	}

	if n := len(out.Days[3].Tasks); n != 0 {
		t.Errorf("completed task must not be drawn, Thursday has %d cards", n)
	}

	fri, sat := out.Days[4].Tasks, out.Days[5].Tasks
	if len(fri) != 1 || fri[0].Geometry != (schedule.Geometry{TopMinutes: 840, HeightMinutes: 600}) || fri[0].Segment != schedule.SegmentStart {
		t.Errorf("unexpected Friday %+v", fri)
	}
	if len(sat) != 1 || sat[0].Geometry != (schedule.Geometry{TopMinutes: 0, HeightMinutes: 1440}) || sat[0].TimeLabel != "Full Day" {
		t.Errorf("unexpected Saturday %+v", sat)
	}

	// Navigate forward: the offsite ends on Monday.
	next, err := uc.Week(ctx, testScope, task.WeekInput{Date: out.Next})
	if err != nil {
		t.Fatalf("Week(next): %v", err)
	}
	mon := next.Days[0].Tasks
	if len(mon) != 1 || mon[0].Geometry != (schedule.Geometry{TopMinutes: 0, HeightMinutes: 480}) || mon[0].Segment != schedule.SegmentEnd {
		t.Errorf("unexpected next Monday %+v", mon)
	}
}

func TestWeekFilter(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t)

	mustCreate(t, uc, fields("A", "2025-03-12", "", "11:00", "12:00", "work", "urgent"))
	mustCreate(t, uc, fields("B", "2025-03-12", "", "11:00", "12:00", "work"))
	mustCreate(t, uc, fields("Early", "2025-03-12", "", "08:00", "09:00", "work"))

	out, _ := uc.Week(ctx, testScope, task.WeekInput{Filter: task.Filter{Tags: []string{"WORK", "urgent"}}})
	if n := len(out.Days[2].Tasks); n != 1 || out.Days[2].Tasks[0].Task.Title != "A" {
		t.Errorf("tag filter must be AND, got %+v", out.Days[2].Tasks)
	}

	out, _ = uc.Week(ctx, testScope, task.WeekInput{Filter: task.Filter{Status: tagfilter.StatusOverdue}})
	if n := len(out.Days[2].Tasks); n != 1 || out.Days[2].Tasks[0].Task.Title != "Early" {
		t.Errorf("expected only the overdue task, got %+v", out.Days[2].Tasks)
	}

	if _, err := uc.Week(ctx, testScope, task.WeekInput{Filter: task.Filter{Status: "bogus"}}); !errors.Is(err, task.ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := uc.Week(ctx, testScope, task.WeekInput{Date: "whenever"}); !errors.Is(err, task.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}
}

func TestWeekRelativeDate(t *testing.T) {
	uc, _ := newTestUseCase(t)
	out, err := uc.Week(context.Background(), testScope, task.WeekInput{Date: "in 1 weeks"})
	if err != nil {
		t.Fatalf("Week: %v", err)
	}
	if out.Days[0].Key != "2025-03-17" {
		t.Errorf("expected next week's Monday, got %s", out.Days[0].Key)
	}
}

func TestAgenda(t *testing.T) {
	ctx := context.Background()
	uc, clock := newTestUseCase(t)

	mustCreate(t, uc, fields("Spanning", "2025-03-12", "2025-03-14", "09:00", "17:00"))
	mustCreate(t, uc, fields("Tomorrow", "2025-03-13", "", "09:00", "10:00"))
	done := mustCreate(t, uc, fields("Done", "2025-03-12", "", "10:00", "11:00"))
	uc.Complete(ctx, testScope, done.ID)

	// Move to Thursday: Spanning covers today, Tomorrow is today too.
	clock.t = time.Date(2025, 3, 13, 8, 0, 0, 0, time.UTC)
	out, err := uc.Agenda(ctx, testScope, task.AgendaInput{})
	if err != nil {
		t.Fatalf("Agenda: %v", err)
	}
	if len(out.Today) != 2 || len(out.Upcoming) != 0 {
		t.Errorf("unexpected agenda today=%d upcoming=%d", len(out.Today), len(out.Upcoming))
	}

	clock.t = testNow
	out, _ = uc.Agenda(ctx, testScope, task.AgendaInput{})
	if len(out.Today) != 1 || out.Today[0].Task.Title != "Spanning" {
		t.Errorf("unexpected today %+v", out.Today)
	}
	if len(out.Upcoming) != 1 || out.Upcoming[0].Task.Title != "Tomorrow" {
		t.Errorf("unexpected upcoming %+v", out.Upcoming)
	}
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	uc, clock := newTestUseCase(t)

	first := mustCreate(t, uc, fields("First", "2025-03-12", "", "09:00", "11:00", "work"))
	second := mustCreate(t, uc, fields("Second", "2025-03-12", "", "09:00", "11:00", "work", "review"))
	mustCreate(t, uc, fields("Open", "2025-03-12", "", "09:00", "11:00", "work"))

	uc.Complete(ctx, testScope, first.ID)
	clock.t = time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
	uc.Complete(ctx, testScope, second.ID)

	out, err := uc.History(ctx, testScope, task.HistoryInput{})
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if out.Count != 2 || out.Entries[0].Task.Title != "Second" || out.Entries[1].Task.Title != "First" {
		t.Fatalf("expected most recent first, got %+v", out.Entries)
	}
	if out.Entries[0].Label != "Completed Late" || out.Entries[0].Status != model.StatusCompletedLate {
		t.Errorf("unexpected late entry %+v", out.Entries[0])
	}
	if out.Entries[1].Label != "On Time" {
		t.Errorf("unexpected on-time entry %+v", out.Entries[1])
	}

	filtered, _ := uc.History(ctx, testScope, task.HistoryInput{Tags: []string{"review"}})
	if filtered.Count != 1 || filtered.Entries[0].Task.ID != second.ID {
		t.Errorf("unexpected filtered history %+v", filtered)
	}
}

func TestTags(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t)

	a := mustCreate(t, uc, fields("A", "2025-03-12", "", "09:00", "10:00", "work", "urgent"))
	mustCreate(t, uc, fields("B", "2025-03-12", "", "09:00", "10:00", "urgent"))
	uc.Complete(ctx, testScope, a.ID)

	counts, err := uc.TagCounts(ctx, testScope, task.TagCountsInput{})
	if err != nil {
		t.Fatalf("TagCounts: %v", err)
	}
	if len(counts.Counts) != 2 || counts.Counts[0] != (tagfilter.Count{Tag: "urgent", Count: 2}) {
		t.Errorf("unexpected counts %+v", counts.Counts)
	}

	active, _ := uc.TagCounts(ctx, testScope, task.TagCountsInput{Completion: tagfilter.CompletionOnlyActive})
	if len(active.Counts) != 1 || active.Counts[0].Tag != "urgent" {
		t.Errorf("unexpected active counts %+v", active.Counts)
	}

	if _, err := uc.TagCounts(ctx, testScope, task.TagCountsInput{Completion: "sometimes"}); !errors.Is(err, task.ErrInvalidCompleted) {
		t.Errorf("expected ErrInvalidCompleted, got %v", err)
	}

	vocab, err := uc.AddTag(ctx, testScope, "  Errand ")
	if err != nil || vocab.Tags[len(vocab.Tags)-1] != "errand" {
		t.Fatalf("AddTag: %+v %v", vocab, err)
	}
	if _, err := uc.AddTag(ctx, testScope, " "); !errors.Is(err, task.ErrEmptyTag) {
		t.Errorf("expected ErrEmptyTag, got %v", err)
	}

	vocab, err = uc.RemoveTag(ctx, testScope, "errand")
	if err != nil {
		t.Fatalf("RemoveTag: %v", err)
	}
	for _, tag := range vocab.Tags {
		if tag == "errand" {
			t.Error("errand should be gone")
		}
	}
	if _, err := uc.RemoveTag(ctx, testScope, "errand"); !errors.Is(err, task.ErrTagNotFound) {
		t.Errorf("expected ErrTagNotFound, got %v", err)
	}

	sugg, err := uc.SuggestTags(ctx, testScope, task.SuggestTagsInput{Current: []string{"Urgent"}, Query: "ur"})
	if err != nil {
		t.Fatalf("SuggestTags: %v", err)
	}
	for _, tag := range sugg.Tags {
		if tag == "urgent" {
			t.Error("tags already on the task must not be suggested")
		}
	}

	all, _ := uc.SuggestTags(ctx, testScope, task.SuggestTagsInput{})
	if len(all.Tags) != tagfilter.DefaultSuggestLimit {
		t.Errorf("expected %d suggestions, got %v", tagfilter.DefaultSuggestLimit, all.Tags)
	}
}

func TestRepositoryErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t)
	boom := errors.New("store offline")
	uc.repo = failingRepo{Repository: uc.repo, err: boom}

	if _, err := uc.Week(ctx, testScope, task.WeekInput{}); !errors.Is(err, boom) {
		t.Errorf("Week: expected %v, got %v", boom, err)
	}
	if _, err := uc.History(ctx, testScope, task.HistoryInput{}); !errors.Is(err, boom) {
		t.Errorf("History: expected %v, got %v", boom, err)
	}
	if _, err := uc.Vocabulary(ctx, testScope); !errors.Is(err, boom) {
		t.Errorf("Vocabulary: expected %v, got %v", boom, err)
	}
}

func TestExport(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t)

	mustCreate(t, uc, fields("Later", "2025-03-14", "", "09:00", "10:00", "work"))
	mustCreate(t, uc, fields("Early", "2025-03-12", "", "11:00", "12:00"))
	mustCreate(t, uc, fields("Earlier", "2025-03-12", "", "10:30", "11:00"))
	uc.Create(ctx, model.Scope{UserID: "u2"}, task.CreateInput{TaskFields: fields("Theirs", "2025-03-12", "", "09:00", "10:00")})

	out, err := uc.Export(ctx, testScope)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(out.Tasks) != 3 {
		t.Fatalf("expected 3 own tasks, got %d", len(out.Tasks))
	}
	if out.Tasks[0].Title != "Earlier" || out.Tasks[1].Title != "Early" || out.Tasks[2].Title != "Later" {
		t.Errorf("unexpected order %s, %s, %s", out.Tasks[0].Title, out.Tasks[1].Title, out.Tasks[2].Title)
	}
	if len(out.Tags) == 0 || out.Tags[0] != "work" {
		t.Errorf("expected seeded vocabulary, got %v", out.Tags)
	}
	if !out.PomodoroVisible {
		t.Error("pomodoro widget should default to visible")
	}
}

func TestExportRepoFailure(t *testing.T) {
	uc, _ := newTestUseCase(t)
	boom := errors.New("boom")
	uc.repo = failingRepo{err: boom}

	if _, err := uc.Export(context.Background(), testScope); !errors.Is(err, boom) {
		t.Errorf("expected repo error, got %v", err)
	}
}
