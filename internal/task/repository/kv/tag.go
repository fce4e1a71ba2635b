package kv

import (
	"context"

	"github.com/giorgi26/Planner/internal/tagfilter"
	"github.com/giorgi26/Planner/internal/task/repository"
)

func (r *implRepository) loadTags(ctx context.Context) ([]string, error) {
	var tags []string
	ok, err := r.load(ctx, KeyTags, &tags)
	if err != nil {
		return nil, err
	}
	if !ok {
		return append([]string(nil), r.defaultTags...), nil
	}
	return tags, nil
}

func (r *implRepository) ListTags(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.loadTags(ctx)
}

func (r *implRepository) AddTags(ctx context.Context, tags []string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	vocab, err := r.loadTags(ctx)
	if err != nil {
		return nil, err
	}

	merged, added := tagfilter.Merge(vocab, tags)
	if len(added) == 0 {
		return nil, nil
	}

	if err := r.save(ctx, KeyTags, merged); err != nil {
		return nil, err
	}
	return added, nil
}

func (r *implRepository) RemoveTag(ctx context.Context, tag string) ([]string, error) {
	tag = tagfilter.NormalizeTag(tag)

	r.mu.Lock()
	defer r.mu.Unlock()

	vocab, err := r.loadTags(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(vocab))
	for _, v := range vocab {
		if v != tag {
			out = append(out, v)
		}
	}
	if len(out) == len(vocab) {
		return nil, repository.ErrNotFound
	}

	if err := r.save(ctx, KeyTags, out); err != nil {
		return nil, err
	}
	return out, nil
}
