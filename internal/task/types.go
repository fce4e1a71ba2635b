package task

import (
	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/schedule"
	"github.com/giorgi26/Planner/internal/tagfilter"
)

// --- UseCase Inputs ---

// TaskFields are the user-editable parts of a task.
type TaskFields struct {
	Title       string
	Description string
	Date        string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD, empty for single-day
	StartTime   string // HH:MM
	EndTime     string // HH:MM
	Color       model.Color
	Tags        []string
}

type CreateInput struct {
	TaskFields
}

type UpdateInput struct {
	ID string
	TaskFields
}

type DeleteInput struct {
	ID string
	// OpenTaskID is the task currently shown in the detail panel, if any.
	OpenTaskID string
}

type AddCommentInput struct {
	ID   string
	Text string
}

type RecordPomodoroInput struct {
	ID      string
	Seconds int // focus time of the finished session
}

// Filter is the calendar filter context.
type Filter struct {
	Status tagfilter.StatusFilter
	Tags   []string
}

type WeekInput struct {
	// Date selects the week. It accepts a YYYY-MM-DD key or a relative
	// phrase such as "next week"; empty means today.
	Date   string
	Filter Filter
}

type AgendaInput struct {
	Filter Filter
}

type HistoryInput struct {
	Tags []string
}

type TagCountsInput struct {
	Completion tagfilter.Completion
}

type SuggestTagsInput struct {
	Current []string // tags already on the task being edited
	Query   string
}

// --- UseCase Outputs ---

// TaskView is a task together with its status at query time.
type TaskView struct {
	Task   model.Task
	Status model.Status
}

type CreateOutput struct {
	TaskView
	// AddedTags lists tags that entered the vocabulary with this call.
	AddedTags []string
}

type UpdateOutput struct {
	TaskView
	AddedTags []string
}

type DetailOutput struct {
	TaskView
}

type DeleteOutput struct {
	// ClosePanel is true when the deleted task was open in the detail panel.
	ClosePanel bool
}

type CompletionOutput struct {
	TaskView
	// Changed is false when Complete found the task already completed.
	Changed bool
}

type AddCommentOutput struct {
	TaskView
	// Added is false when the text was blank and nothing was stored.
	Added bool
}

// CalendarTask is one card in a day column.
type CalendarTask struct {
	TaskView
	Segment   schedule.Segment
	Geometry  schedule.Geometry
	TimeLabel string
}

type Day struct {
	Key     string // YYYY-MM-DD
	Weekday string
	IsToday bool
	Tasks   []CalendarTask
}

type WeekOutput struct {
	Label string // "Aug 16 - Aug 22, 2021"
	Days  []Day  // Monday first, always 7
	Prev  string // Monday of the previous week
	Next  string // Monday of the next week
}

type AgendaOutput struct {
	Today    []TaskView
	Upcoming []TaskView
}

type HistoryEntry struct {
	TaskView
	Label string // "On Time" or "Completed Late"
}

type HistoryOutput struct {
	Entries []HistoryEntry
	Count   int
}

type TagCountsOutput struct {
	Counts []tagfilter.Count
}

type VocabularyOutput struct {
	Tags []string
}

type SuggestTagsOutput struct {
	Tags []string
}

type PreferencesOutput struct {
	PomodoroVisible bool
}

// ExportOutput is a full snapshot of what the user can see.
type ExportOutput struct {
	Tasks           []model.Task
	Tags            []string
	PomodoroVisible bool
}
