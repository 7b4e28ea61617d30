package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load offset")
	ErrFailedToSave = errors.New("failed to save offset")
)
