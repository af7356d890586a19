package hostwirecfg

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/hostwire/hostwire/domain/model"
)

// ToModels converts the configuration to domain models.
// Returns the provider and the desired state for a resolution run.
func (r *Root) ToModels() (*model.Provider, *model.DesiredState, error) {
	now := time.Now()

	providerID, err := generateID()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate provider ID: %w", err)
	}

	provider := &model.Provider{
		ID:        providerID,
		Name:      r.Provider.Name,
		Driver:    r.Provider.Driver,
		Settings:  r.Provider.Settings,
		CreatedAt: now,
		UpdatedAt: now,
	}

	mode := model.DNSProviderMode(r.Endpoint.DNSProvider)
	if r.Endpoint.DNSProvider == "" {
		mode = model.DNSProviderRoute53
	}

	state := &model.DesiredState{
		FeatureEnabled:    r.Endpoint.Enabled,
		DNSProvider:       mode,
		CreateZone:        r.Endpoint.CreateZone,
		ZoneID:            r.Endpoint.ZoneID,
		ZoneName:          r.Endpoint.ZoneName,
		Hostname:          r.Endpoint.Hostname,
		WaitForValidation: r.Endpoint.WaitForValidation,
		IngressStackTag:   r.Ingress.StackTag,
		ClusterName:       r.Ingress.ClusterName,
	}

	return provider, state, nil
}

// generateID returns a random 128-bit hex identifier.
func generateID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b), nil
}
