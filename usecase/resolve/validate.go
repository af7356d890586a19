package resolve

import (
	"github.com/hostwire/hostwire/domain/model"
)

// Validate checks the desired state for internal consistency and returns every
// violation found. It performs no provider calls and has no side effects.
//
// When FeatureEnabled is false the remaining fields are ignored by every
// downstream stage, so none of them are validated.
func Validate(state *model.DesiredState) []*model.ConfigError {
	if !state.FeatureEnabled {
		return nil
	}

	var errs []*model.ConfigError

	switch state.DNSProvider {
	case model.DNSProviderRoute53, model.DNSProviderExternal:
	default:
		errs = append(errs, model.NewConfigError(model.ConfigErrInvalidDNSProvider,
			"dnsProvider %q is not one of %q, %q", state.DNSProvider, model.DNSProviderRoute53, model.DNSProviderExternal))
	}

	if state.DNSProvider == model.DNSProviderRoute53 && state.ZoneID == "" && state.ZoneName == "" {
		errs = append(errs, model.NewConfigError(model.ConfigErrMissingZoneSelector,
			"route53 mode requires zoneId or zoneName"))
	}

	if state.Hostname == "" {
		errs = append(errs, model.NewConfigError(model.ConfigErrMissingHostname,
			"hostname is required when the endpoint is enabled"))
	}

	if state.ClusterName == "" {
		errs = append(errs, model.NewConfigError(model.ConfigErrMissingClusterName,
			"clusterName is required for load balancer tag discovery"))
	}

	return errs
}
