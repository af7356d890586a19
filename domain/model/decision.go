package model

// ZoneDecisionKind discriminates the hosted zone variants.
type ZoneDecisionKind string

const (
	ZoneCreateNew ZoneDecisionKind = "create_new"
	ZoneUseByID   ZoneDecisionKind = "use_by_id"
	ZoneUseByName ZoneDecisionKind = "use_by_name"
	ZoneNone      ZoneDecisionKind = "none"
)

// ZoneDecision is a tagged variant describing which hosted zone a resolution
// run operates on. Exactly one of ID/Name is meaningful per kind:
// CreateNew and UseByName carry Name, UseByID carries ID, None carries neither.
type ZoneDecision struct {
	Kind ZoneDecisionKind
	ID   string
	Name string
}

// CertificateDecision describes whether a TLS certificate must be issued and
// whether the run blocks until the certificate authority validates it.
type CertificateDecision struct {
	Required          bool
	WaitForValidation bool
}

// LoadBalancerRef is the result of tag-based load balancer discovery.
// Found is false when the ingress controller has not provisioned one yet;
// that is not an error, a later run picks it up.
type LoadBalancerRef struct {
	Found        bool
	DNSName      string
	HostedZoneID string // canonical hosted zone of the load balancer, for alias records
}
