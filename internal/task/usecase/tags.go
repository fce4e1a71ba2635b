package usecase

import (
	"context"
	"errors"

	"github.com/giorgi26/Planner/internal/model"
	"github.com/giorgi26/Planner/internal/tagfilter"
	"github.com/giorgi26/Planner/internal/task"
	"github.com/giorgi26/Planner/internal/task/repository"
)

// TagCounts reports how many of the user's tasks carry each tag, most used first.
func (uc *implUseCase) TagCounts(ctx context.Context, sc model.Scope, input task.TagCountsInput) (task.TagCountsOutput, error) {
	if !input.Completion.Valid() {
		return task.TagCountsOutput{}, task.ErrInvalidCompleted
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{CreatedByUserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "usecase.TagCounts: repo.ListTasks: %v", err)
		return task.TagCountsOutput{}, err
	}

	return task.TagCountsOutput{Counts: tagfilter.UsageCounts(tasks, sc.UserID, input.Completion)}, nil
}

// Vocabulary returns every known tag in insertion order.
func (uc *implUseCase) Vocabulary(ctx context.Context, sc model.Scope) (task.VocabularyOutput, error) {
	tags, err := uc.repo.ListTags(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "usecase.Vocabulary: repo.ListTags: %v", err)
		return task.VocabularyOutput{}, err
	}
	return task.VocabularyOutput{Tags: tags}, nil
}

// AddTag adds a tag to the vocabulary. Adding a known tag is a no-op.
func (uc *implUseCase) AddTag(ctx context.Context, sc model.Scope, tag string) (task.VocabularyOutput, error) {
	tag = tagfilter.NormalizeTag(tag)
	if tag == "" {
		return task.VocabularyOutput{}, task.ErrEmptyTag
	}

	if _, err := uc.repo.AddTags(ctx, []string{tag}); err != nil {
		uc.l.Errorf(ctx, "usecase.AddTag: repo.AddTags(%s): %v", tag, err)
		return task.VocabularyOutput{}, err
	}
	return uc.Vocabulary(ctx, sc)
}

// RemoveTag drops a tag from the vocabulary. Tasks keep the tag.
func (uc *implUseCase) RemoveTag(ctx context.Context, sc model.Scope, tag string) (task.VocabularyOutput, error) {
	tag = tagfilter.NormalizeTag(tag)
	if tag == "" {
		return task.VocabularyOutput{}, task.ErrEmptyTag
	}

	tags, err := uc.repo.RemoveTag(ctx, tag)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.VocabularyOutput{}, task.ErrTagNotFound
		}
		uc.l.Errorf(ctx, "usecase.RemoveTag: repo.RemoveTag(%s): %v", tag, err)
		return task.VocabularyOutput{}, err
	}
	return task.VocabularyOutput{Tags: tags}, nil
}

// SuggestTags offers vocabulary tags matching the typed fragment that the
// task does not already carry.
func (uc *implUseCase) SuggestTags(ctx context.Context, sc model.Scope, input task.SuggestTagsInput) (task.SuggestTagsOutput, error) {
	vocab, err := uc.Vocabulary(ctx, sc)
	if err != nil {
		return task.SuggestTagsOutput{}, err
	}

	current := tagfilter.Normalize(input.Current)
	return task.SuggestTagsOutput{
		Tags: tagfilter.Suggest(vocab.Tags, current, input.Query, tagfilter.DefaultSuggestLimit),
	}, nil
}
