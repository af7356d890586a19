package domain

import (
	"context"

	"github.com/hostwire/hostwire/domain/model"
)

// ProviderRepository stores and retrieves Provider aggregates.
type ProviderRepository interface {
	Create(ctx context.Context, p *model.Provider) error
	Get(ctx context.Context, id string) (*model.Provider, error)
	List(ctx context.Context) ([]*model.Provider, error)
	Update(ctx context.Context, p *model.Provider) error
	Delete(ctx context.Context, id string) error
}

// RunRepository stores and retrieves ResolutionRun records.
type RunRepository interface {
	Create(ctx context.Context, r *model.ResolutionRun) error
	Get(ctx context.Context, id string) (*model.ResolutionRun, error)
	List(ctx context.Context) ([]*model.ResolutionRun, error)
	Update(ctx context.Context, r *model.ResolutionRun) error
	Delete(ctx context.Context, id string) error
}
