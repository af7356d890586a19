package model

import "time"

// ResolutionRun is the persisted record of one resolution pass: what was
// resolved, how it ended, and the values surfaced to dependents. The run
// history is an audit trail; the state of record stays in the cloud provider.
type ResolutionRun struct {
	ID                  string
	Name                string // compact, time-ordered run name
	ProviderID          string // provider row that served this run
	Hostname            string
	DNSProvider         DNSProviderMode
	Outcome             ResolveOutcome
	ZoneID              string
	CertificateARN      string
	LoadBalancerDNSName string
	Error               string // summary of a fatal error, empty on success
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
