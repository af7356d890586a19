package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hostwire/hostwire/domain"
	"github.com/hostwire/hostwire/domain/model"
)

// RunRepository is a thread-safe in-memory implementation.
type RunRepository struct {
	mu    sync.RWMutex
	items map[string]*model.ResolutionRun
	seq   int64
}

func NewRunRepository() *RunRepository {
	return &RunRepository{items: make(map[string]*model.ResolutionRun)}
}

func (r *RunRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("run-%d-%d", time.Now().UnixNano(), r.seq)
}

func (r *RunRepository) Create(_ context.Context, run *model.ResolutionRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if run.ID == "" {
		run.ID = r.nextID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.UpdatedAt = time.Now()
	cp := *run
	r.items[run.ID] = &cp
	return nil
}

func (r *RunRepository) Get(_ context.Context, id string) (*model.ResolutionRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return nil, model.ErrRunNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *RunRepository) List(_ context.Context) ([]*model.ResolutionRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.ResolutionRun, 0, len(r.items))
	for _, v := range r.items {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (r *RunRepository) Update(_ context.Context, run *model.ResolutionRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[run.ID]; !ok {
		return model.ErrRunNotFound
	}
	run.UpdatedAt = time.Now()
	cp := *run
	r.items[run.ID] = &cp
	return nil
}

func (r *RunRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return model.ErrRunNotFound
	}
	delete(r.items, id)
	return nil
}

var _ domain.RunRepository = (*RunRepository)(nil)
