package model

// DNSRecordType represents provider-agnostic DNS record types.
type DNSRecordType string

const (
	DNSRecordTypeA     DNSRecordType = "A"
	DNSRecordTypeAAAA  DNSRecordType = "AAAA"
	DNSRecordTypeCNAME DNSRecordType = "CNAME"
	DNSRecordTypeTXT   DNSRecordType = "TXT"
	DNSRecordTypeNS    DNSRecordType = "NS"
	DNSRecordTypeAlias DNSRecordType = "ALIAS" // provider alias to a load balancer endpoint
)

// DNSRecordSet describes a single DNS record set identified by FQDN and type.
type DNSRecordSet struct {
	FQDN  string // Absolute FQDN. Trailing dot is optional.
	Type  DNSRecordType
	TTL   uint32   // TTL in seconds. Use provider default when zero.
	RData []string // Presentation-format RDATA. Empty slice indicates deletion.

	// AliasTarget is set for Type == DNSRecordTypeAlias and points at the
	// discovered load balancer endpoint instead of RData.
	AliasTarget *AliasTarget
}

// AliasTarget identifies a load balancer endpoint for alias records.
type AliasTarget struct {
	DNSName      string
	HostedZoneID string // hosted zone owning the load balancer DNS name
}

// ValidationRecord is a DNS record proving domain ownership for certificate issuance.
// When the DNS provider is externally managed, these are surfaced as outputs
// for manual application instead of being upserted.
type ValidationRecord struct {
	Domain string `json:"domain"`
	Name   string `json:"name"`
	Type   string `json:"type"` // usually CNAME
	Value  string `json:"value"`
}
