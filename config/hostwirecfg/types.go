// Package hostwirecfg defines the configuration schema (structs) for hostwireops.yml.
// This package is intended for YAML -> struct deserialization.
// Loading helpers and validations are implemented separately.
package hostwirecfg

// Root is the root structure of hostwireops.yml.
type Root struct {
	Version  string   `yaml:"version"`
	Provider Provider `yaml:"provider"`
	Endpoint Endpoint `yaml:"endpoint"`
	Ingress  Ingress  `yaml:"ingress"`
	Naming   Naming   `yaml:"naming,omitempty"`
}

// Provider selects the cloud driver and its settings.
type Provider struct {
	Name     string            `yaml:"name"`     // provider name
	Driver   string            `yaml:"driver"`   // e.g., "route53", "external"
	Settings map[string]string `yaml:"settings"` // driver-specific settings (AWS_REGION, ...)
}

// Endpoint is the desired public-hostname configuration.
type Endpoint struct {
	Enabled           bool   `yaml:"enabled"`
	DNSProvider       string `yaml:"dnsProvider"` // "route53" (default) or "external"
	CreateZone        bool   `yaml:"createZone,omitempty"`
	ZoneID            string `yaml:"zoneId,omitempty"`
	ZoneName          string `yaml:"zoneName,omitempty"`
	Hostname          string `yaml:"hostname"`
	WaitForValidation bool   `yaml:"waitForValidation,omitempty"`
}

// Ingress identifies the cluster ingress stack whose load balancer the
// hostname is wired to.
type Ingress struct {
	ClusterName string `yaml:"clusterName"`
	StackTag    string `yaml:"stackTag"`
}

// Naming carries resource-naming conventions. Conventions are configuration,
// not compiled-in constants, so the resolver stays reusable across environments.
type Naming struct {
	ClusterTagKey string `yaml:"clusterTagKey,omitempty"` // default "elbv2.cluster"
	StackTagKey   string `yaml:"stackTagKey,omitempty"`   // default "ingress.stack"
	RecordTTL     uint32 `yaml:"recordTTL,omitempty"`     // default 300 seconds
}

// Defaults for the Naming section.
const (
	DefaultClusterTagKey = "elbv2.cluster"
	DefaultStackTagKey   = "ingress.stack"
	DefaultRecordTTL     = 300
)

// TagKeys returns the effective tag keys, applying defaults for empty fields.
func (n Naming) TagKeys() (clusterKey, stackKey string) {
	clusterKey = n.ClusterTagKey
	if clusterKey == "" {
		clusterKey = DefaultClusterTagKey
	}
	stackKey = n.StackTagKey
	if stackKey == "" {
		stackKey = DefaultStackTagKey
	}
	return clusterKey, stackKey
}

// TTL returns the effective record TTL, applying the default when unset.
func (n Naming) TTL() uint32 {
	if n.RecordTTL == 0 {
		return DefaultRecordTTL
	}
	return n.RecordTTL
}
