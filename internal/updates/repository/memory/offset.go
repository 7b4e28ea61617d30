package memory

import (
	"context"
	"sync"

	"telegram-bot-framework/internal/updates/repository"
)

type implRepository struct {
	mu     sync.Mutex
	offset int64
}

// New creates a process-local OffsetRepository.
func New() repository.OffsetRepository {
	return &implRepository{}
}

func (r *implRepository) Load(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.offset, nil
}

func (r *implRepository) Save(ctx context.Context, offset int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offset = offset
	return nil
}
