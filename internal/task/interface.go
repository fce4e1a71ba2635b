package task

import (
	"context"

	"github.com/giorgi26/Planner/internal/model"
)

// UseCase defines the business logic interface for the planner.
// Every call acts for the user in sc and sees only that user's tasks.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Task lifecycle
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (UpdateOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (DetailOutput, error)
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) (DeleteOutput, error)
	Complete(ctx context.Context, sc model.Scope, id string) (CompletionOutput, error)
	ToggleCompletion(ctx context.Context, sc model.Scope, id string) (CompletionOutput, error)
	AddComment(ctx context.Context, sc model.Scope, input AddCommentInput) (AddCommentOutput, error)
	RecordPomodoro(ctx context.Context, sc model.Scope, input RecordPomodoroInput) (DetailOutput, error)

	// Views
	Week(ctx context.Context, sc model.Scope, input WeekInput) (WeekOutput, error)
	Agenda(ctx context.Context, sc model.Scope, input AgendaInput) (AgendaOutput, error)
	History(ctx context.Context, sc model.Scope, input HistoryInput) (HistoryOutput, error)

	// Tags
	TagCounts(ctx context.Context, sc model.Scope, input TagCountsInput) (TagCountsOutput, error)
	Vocabulary(ctx context.Context, sc model.Scope) (VocabularyOutput, error)
	AddTag(ctx context.Context, sc model.Scope, tag string) (VocabularyOutput, error)
	RemoveTag(ctx context.Context, sc model.Scope, tag string) (VocabularyOutput, error)
	SuggestTags(ctx context.Context, sc model.Scope, input SuggestTagsInput) (SuggestTagsOutput, error)

	// Preferences
	Preferences(ctx context.Context, sc model.Scope) (PreferencesOutput, error)
	TogglePomodoro(ctx context.Context, sc model.Scope) (PreferencesOutput, error)

	// Backup
	Export(ctx context.Context, sc model.Scope) (ExportOutput, error)
}
