package model

// DNSProviderMode selects how public DNS for the endpoint is managed.
type DNSProviderMode string

const (
	// DNSProviderRoute53 manages DNS through a Route53 hosted zone.
	DNSProviderRoute53 DNSProviderMode = "route53"
	// DNSProviderExternal leaves DNS to an external operator; the resolver
	// exports the records that must exist instead of creating them.
	DNSProviderExternal DNSProviderMode = "external"
)

// DesiredState is the immutable input of a resolution run: the desired
// public-hostname configuration for a cluster ingress endpoint.
type DesiredState struct {
	// FeatureEnabled gates the whole endpoint. When false every other field
	// is ignored and all outputs take their disabled sentinel.
	FeatureEnabled bool

	DNSProvider DNSProviderMode

	// CreateZone requests creation of a new hosted zone named ZoneName.
	// When false an existing zone is referenced by ZoneID or ZoneName.
	CreateZone bool
	ZoneID     string
	ZoneName   string

	// Hostname is the public FQDN to wire to the ingress load balancer.
	Hostname string

	// WaitForValidation blocks the run until the certificate is validated.
	WaitForValidation bool

	// IngressStackTag and ClusterName form the tag query used to discover
	// the ingress load balancer.
	IngressStackTag string
	ClusterName     string
}
