package hostwirecfg

import (
	"fmt"

	"github.com/hostwire/hostwire/domain/model"
	"github.com/hostwire/hostwire/internal/naming"
)

// Validate performs semantic validation on the configuration tree.
// Desired-state consistency (zone selector, hostname, cluster name) is
// enforced later by the resolver; this catches schema-level mistakes early.
func (r *Root) Validate() error {
	if err := r.Provider.validate(); err != nil {
		return fmt.Errorf("provider: %w", err)
	}
	if err := r.Endpoint.validate(); err != nil {
		return fmt.Errorf("endpoint: %w", err)
	}
	return nil
}

func (p *Provider) validate() error {
	if p.Driver == "" {
		return fmt.Errorf("driver is required")
	}
	return nil
}

func (e *Endpoint) validate() error {
	if !e.Enabled {
		// Disabled endpoint: remaining fields are ignored downstream.
		return nil
	}
	switch model.DNSProviderMode(e.DNSProvider) {
	case model.DNSProviderRoute53, model.DNSProviderExternal, "":
		// "" defaults to route53 at conversion time
	default:
		return fmt.Errorf("dnsProvider: invalid value %q, must be %q or %q",
			e.DNSProvider, model.DNSProviderRoute53, model.DNSProviderExternal)
	}
	if e.Hostname != "" {
		if err := naming.ValidateHostname(e.Hostname); err != nil {
			return fmt.Errorf("hostname: %w", err)
		}
	}
	if e.ZoneName != "" {
		if err := naming.ValidateZoneName(e.ZoneName); err != nil {
			return fmt.Errorf("zoneName: %w", err)
		}
	}
	if e.CreateZone && e.ZoneName == "" {
		return fmt.Errorf("createZone requires zoneName")
	}
	return nil
}
