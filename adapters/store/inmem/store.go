package inmem

import (
	"context"

	"github.com/hostwire/hostwire/config/hostwirecfg"
	"github.com/hostwire/hostwire/domain"
	"github.com/hostwire/hostwire/domain/model"
)

// storedState pairs a desired state with the provider it was loaded with.
type storedState struct {
	ProviderID string
	State      *model.DesiredState
}

// Store provides a unified interface for all in-memory repositories.
type Store struct {
	ProviderRepo *ProviderRepository
	RunRepo      *RunRepository

	// DesiredState carries the endpoint configuration loaded alongside the
	// provider when the store is file-backed.
	DesiredState *storedState
}

// NewStore creates a new in-memory store with all repositories.
func NewStore() *Store {
	return &Store{
		ProviderRepo: NewProviderRepository(),
		RunRepo:      NewRunRepository(),
	}
}

// LoadFromConfig loads a hostwireops.yml configuration into the memory store.
func (s *Store) LoadFromConfig(ctx context.Context, cfg *hostwirecfg.Root) error {
	provider, state, err := cfg.ToModels()
	if err != nil {
		return err
	}
	if err := s.ProviderRepo.Create(ctx, provider); err != nil {
		return err
	}
	s.DesiredState = &storedState{ProviderID: provider.ID, State: state}
	return nil
}

// LoadFromFile loads a hostwireops.yml file into the memory store.
func (s *Store) LoadFromFile(ctx context.Context, path string) error {
	cfg, err := hostwirecfg.Load(path)
	if err != nil {
		return err
	}
	return s.LoadFromConfig(ctx, cfg)
}

// Compile-time assertions
var _ domain.ProviderRepository = (*ProviderRepository)(nil)
var _ domain.RunRepository = (*RunRepository)(nil)
