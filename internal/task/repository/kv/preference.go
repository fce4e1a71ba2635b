package kv

import "context"

// GetPomodoroVisible defaults to true until the preference is first saved.
func (r *implRepository) GetPomodoroVisible(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	visible := true
	if _, err := r.load(ctx, KeyPomodoroVisible, &visible); err != nil {
		return false, err
	}
	return visible, nil
}

func (r *implRepository) SetPomodoroVisible(ctx context.Context, visible bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.save(ctx, KeyPomodoroVisible, visible)
}
