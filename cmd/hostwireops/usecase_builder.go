package main

import (
	"fmt"

	clouddrv "github.com/hostwire/hostwire/adapters/drivers/cloud"
	"github.com/hostwire/hostwire/config/hostwirecfg"
	"github.com/hostwire/hostwire/domain/model"
	"github.com/hostwire/hostwire/usecase/resolve"
	"github.com/hostwire/hostwire/usecase/run"
	"github.com/spf13/cobra"
)

// loadConfig returns the effective configuration: the one carried by a
// file-backed store, or the file named by the --file flag otherwise.
func loadConfig(cmd *cobra.Command, s *stores) (*hostwirecfg.Root, error) {
	if s.Config != nil {
		return s.Config, nil
	}
	path := "hostwireops.yml"
	if f := findFlag(cmd, "file"); f != nil && f.Value.String() != "" {
		path = f.Value.String()
	}
	return hostwirecfg.Load(path)
}

// buildResolveUseCase creates the resolve use case with repositories, cloud
// port and naming conventions, and returns the desired state alongside.
func buildResolveUseCase(cmd *cobra.Command) (*resolve.UseCase, *model.DesiredState, error) {
	s, err := buildStores(cmd)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := loadConfig(cmd, s)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	provider, state, err := cfg.ToModels()
	if err != nil {
		return nil, nil, err
	}
	if s.State != nil {
		state = s.State
	}

	port, err := clouddrv.GetCloudPort(provider)
	if err != nil {
		return nil, nil, err
	}

	clusterKey, stackKey := cfg.Naming.TagKeys()
	uc := &resolve.UseCase{
		Repos:     &resolve.Repos{Provider: s.Provider, Run: s.Run},
		CloudPort: port,
		Provider:  provider,
		Conventions: resolve.Conventions{
			ClusterTagKey: clusterKey,
			StackTagKey:   stackKey,
			RecordTTL:     cfg.Naming.TTL(),
		},
	}
	return uc, state, nil
}

// buildRunUseCase creates the run history use case with required repositories.
func buildRunUseCase(cmd *cobra.Command) (*run.UseCase, error) {
	s, err := buildStores(cmd)
	if err != nil {
		return nil, err
	}
	return &run.UseCase{Repos: &run.Repos{Run: s.Run}}, nil
}
