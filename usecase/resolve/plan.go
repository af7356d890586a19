package resolve

import (
	"github.com/hostwire/hostwire/domain/model"
)

// BuildPlan composes the ordered step sequence for a resolution run.
//
// Ordering rules: EnsureZone precedes IssueCertificate; IssueCertificate
// precedes WaitForValidation; WaitForValidation (when present) precedes the
// record step; LocateLoadBalancer is independent but must complete before the
// record step since the record aliases the load balancer. In external mode
// the record step is an export-only marker and the plan performs no mutating
// provider call for it.
//
// WaitForValidation appears only when the certificate decision asks for it;
// otherwise the certificate ARN is surfaced immediately in a pending state
// and a later run resumes. The plan is re-entrant: every step is an
// idempotent upsert, so executing it repeatedly is safe.
func BuildPlan(state *model.DesiredState, zone model.ZoneDecision, cert model.CertificateDecision) model.Plan {
	if !state.FeatureEnabled {
		return model.Plan{}
	}

	var steps []model.Step

	if zone.Kind != model.ZoneNone {
		target := zone.Name
		if zone.Kind == model.ZoneUseByID {
			target = zone.ID
		}
		steps = append(steps, model.Step{Kind: model.StepEnsureZone, Target: target})
	}

	if cert.Required {
		steps = append(steps, model.Step{Kind: model.StepIssueCertificate, Target: state.Hostname})
		if cert.WaitForValidation {
			steps = append(steps, model.Step{Kind: model.StepWaitForValidation, Target: state.Hostname})
		}
	}

	steps = append(steps, model.Step{Kind: model.StepLocateLoadBalancer, Target: state.ClusterName})

	recordKind := model.StepEmitDNSRecord
	if state.DNSProvider == model.DNSProviderExternal {
		recordKind = model.StepExportDNSRecord
	}
	steps = append(steps, model.Step{Kind: recordKind, Target: state.Hostname})

	return model.Plan{Steps: steps}
}
