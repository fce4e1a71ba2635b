package repository

import "errors"

var (
	ErrNotFound      = errors.New("record not found")
	ErrFailedToLoad  = errors.New("failed to load record")
	ErrFailedToSave  = errors.New("failed to save record")
	ErrFailedDecode  = errors.New("failed to decode record")
	ErrInvalidOption = errors.New("invalid repository option")
)
