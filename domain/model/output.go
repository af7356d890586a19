package model

// OutputSet holds the externally observable values of a resolution run.
// Every field takes its disabled sentinel (empty string, nil slice) when the
// owning feature did not execute; a field is never partially computed.
type OutputSet struct {
	ZoneID              string             `json:"zone_id,omitempty"`
	NameServers         []string           `json:"name_servers,omitempty"`
	CertificateARN      string             `json:"certificate_arn,omitempty"`
	ValidationRecords   []ValidationRecord `json:"validation_records,omitempty"`
	LoadBalancerDNSName string             `json:"load_balancer_dns_name,omitempty"`
}

// ResolveOutcome classifies how a resolution run ended.
type ResolveOutcome string

const (
	// OutcomeComplete means every applicable step is satisfied.
	OutcomeComplete ResolveOutcome = "complete"
	// OutcomePendingValidation means the certificate is issued but not yet
	// validated; a later run resumes waiting.
	OutcomePendingValidation ResolveOutcome = "pending_validation"
	// OutcomeDisabled means FeatureEnabled was false and nothing executed.
	OutcomeDisabled ResolveOutcome = "disabled"
	// OutcomeInvalid means desired-state validation failed and nothing executed.
	OutcomeInvalid ResolveOutcome = "invalid"
	// OutcomeFailed means a provider call failed partway through the plan.
	OutcomeFailed ResolveOutcome = "failed"
)
