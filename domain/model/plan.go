package model

// StepKind identifies an abstract provisioning step.
type StepKind string

const (
	StepEnsureZone         StepKind = "ensure_zone"
	StepIssueCertificate   StepKind = "issue_certificate"
	StepWaitForValidation  StepKind = "wait_for_validation"
	StepLocateLoadBalancer StepKind = "locate_load_balancer"
	StepEmitDNSRecord      StepKind = "emit_dns_record"
	StepExportDNSRecord    StepKind = "export_dns_record" // external mode: surface record, no provider call
)

// Step is one entry of a provisioning plan.
type Step struct {
	Kind StepKind

	// Target names the resource the step acts on: zone name or id for
	// EnsureZone, hostname for certificate and record steps.
	Target string
}

// Plan is the ordered sequence of steps a resolution run executes.
// The order honors the step dependencies: EnsureZone before IssueCertificate,
// IssueCertificate before WaitForValidation, WaitForValidation (when present)
// and LocateLoadBalancer before EmitDNSRecord.
type Plan struct {
	Steps []Step
}

// Has reports whether the plan contains a step of the given kind.
func (p *Plan) Has(kind StepKind) bool {
	for _, s := range p.Steps {
		if s.Kind == kind {
			return true
		}
	}
	return false
}

// Index returns the position of the first step of the given kind, or -1.
func (p *Plan) Index(kind StepKind) int {
	for i, s := range p.Steps {
		if s.Kind == kind {
			return i
		}
	}
	return -1
}
