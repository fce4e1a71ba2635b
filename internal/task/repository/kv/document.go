package kv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/giorgi26/Planner/internal/task/repository"
)

// load decodes the document at key into v. ok is false when the key is unset.
func (r *implRepository) load(ctx context.Context, key string, v any) (bool, error) {
	dsn := "kv.load"

	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		r.l.Errorf(ctx, "%s: store.Get(%s): %v", dsn, key, err)
		return false, fmt.Errorf("%w: %s: %v", repository.ErrFailedToLoad, key, err)
	}
	if !ok || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, v); err != nil {
		r.l.Errorf(ctx, "%s: json.Unmarshal(%s): %v", dsn, key, err)
		return false, fmt.Errorf("%w: %s: %v", repository.ErrFailedDecode, key, err)
	}
	return true, nil
}

// save encodes v and writes it whole to key.
func (r *implRepository) save(ctx context.Context, key string, v any) error {
	dsn := "kv.save"

	raw, err := json.Marshal(v)
	if err != nil {
		r.l.Errorf(ctx, "%s: json.Marshal(%s): %v", dsn, key, err)
		return fmt.Errorf("%w: %s: %v", repository.ErrFailedToSave, key, err)
	}

	if err := r.store.Set(ctx, key, raw); err != nil {
		r.l.Errorf(ctx, "%s: store.Set(%s): %v", dsn, key, err)
		return fmt.Errorf("%w: %s: %v", repository.ErrFailedToSave, key, err)
	}
	return nil
}
