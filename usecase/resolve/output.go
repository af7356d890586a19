package resolve

import (
	"github.com/hostwire/hostwire/domain/model"
)

// project computes the externally exposed values from executed facts.
// Every field is computed only when its owning step executed; otherwise it
// keeps the disabled sentinel (empty string, nil slice). A field never
// carries a partially computed or stale value.
func project(state *model.DesiredState, f *facts) model.OutputSet {
	if !state.FeatureEnabled {
		return model.OutputSet{}
	}

	var out model.OutputSet

	if f.zone != nil {
		out.ZoneID = f.zone.ID
		// Name servers are surfaced for looked-up zones too, not only for
		// zones created by this run: dependents may need them for delegation.
		out.NameServers = f.zone.NameServers
	}

	if f.cert != nil {
		out.CertificateARN = f.cert.ARN
		// Validation records are only meaningful while validation is
		// outstanding; once issued they are no longer surfaced.
		if f.cert.Status == model.CertificateStatusPending {
			out.ValidationRecords = f.cert.ValidationRecords
		}
	}

	if f.lb.Found {
		out.LoadBalancerDNSName = f.lb.DNSName
	}

	return out
}
