package repository

import "context"

// OffsetRepository stores the polling cursor between restarts.
type OffsetRepository interface {
	// Load returns the stored offset, or zero when nothing was saved yet.
	Load(ctx context.Context) (int64, error)
	Save(ctx context.Context, offset int64) error
}
