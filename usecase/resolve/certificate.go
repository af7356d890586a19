package resolve

import (
	"github.com/hostwire/hostwire/domain/model"
)

// DecideCertificate determines whether a TLS certificate must be issued and
// whether the run blocks for validation.
//
// A certificate is required whenever the endpoint is enabled, regardless of
// DNS provider: external mode still terminates TLS, only the validation
// record delivery path differs. In external mode no automated validation
// record injection is possible, so WaitForValidation is forced off and the
// validation records are surfaced as outputs for manual application.
func DecideCertificate(state *model.DesiredState, zone model.ZoneDecision) model.CertificateDecision {
	if !state.FeatureEnabled {
		return model.CertificateDecision{}
	}

	wait := state.WaitForValidation
	if state.DNSProvider == model.DNSProviderExternal {
		wait = false
	}

	return model.CertificateDecision{
		Required:          true,
		WaitForValidation: wait,
	}
}
