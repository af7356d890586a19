package model

import (
	"context"
	"time"
)

// HostedZone is a provider handle for a DNS namespace container.
type HostedZone struct {
	ID          string
	Name        string
	NameServers []string
}

// CertificateStatus mirrors the provider-side certificate lifecycle.
type CertificateStatus string

const (
	CertificateStatusPending CertificateStatus = "pending_validation"
	CertificateStatusIssued  CertificateStatus = "issued"
	CertificateStatusFailed  CertificateStatus = "failed"
)

// Certificate is a provider handle for a TLS certificate keyed by its domain set.
type Certificate struct {
	ARN               string
	Domain            string
	Status            CertificateStatus
	ValidationRecords []ValidationRecord
}

// LoadBalancer is a provider handle for a discovered load balancer.
type LoadBalancer struct {
	ARN          string
	Name         string
	DNSName      string
	HostedZoneID string
	Tags         map[string]string
}

// Operation-scoped options and functional option types.
type DNSRecordUpsertOptions struct{ DryRun bool }

type DNSRecordUpsertOption func(*DNSRecordUpsertOptions)

// WithDNSRecordUpsertDryRun makes the upsert report the change without applying it.
func WithDNSRecordUpsertDryRun() DNSRecordUpsertOption {
	return func(o *DNSRecordUpsertOptions) { o.DryRun = true }
}

// CloudPort is the domain port for the cloud provider capability consumed by
// a resolution run. Every method is idempotent by natural key (zone name,
// certificate domain set, load balancer tags); creation calls are upserts so
// concurrent or repeated runs against the same hostname are safe.
type CloudPort interface {
	// EnsureHostedZone creates the zone when absent and returns the existing
	// zone otherwise.
	EnsureHostedZone(ctx context.Context, name string) (*HostedZone, error)

	// GetHostedZoneByID returns the zone addressed by provider id.
	GetHostedZoneByID(ctx context.Context, id string) (*HostedZone, error)

	// GetHostedZoneByName returns the zone whose name matches exactly.
	GetHostedZoneByName(ctx context.Context, name string) (*HostedZone, error)

	// EnsureCertificate requests a certificate for the domain when none
	// exists and returns the existing one otherwise, including its pending
	// validation records.
	EnsureCertificate(ctx context.Context, domain string) (*Certificate, error)

	// WaitCertificateValidation blocks until the certificate is validated or
	// the timeout elapses. On timeout it returns ErrValidationTimeout with
	// the certificate left in its pending state.
	WaitCertificateValidation(ctx context.Context, arn string, timeout time.Duration) (*Certificate, error)

	// FindLoadBalancersByTags returns every load balancer carrying all given tags.
	FindLoadBalancersByTags(ctx context.Context, tags map[string]string) ([]*LoadBalancer, error)

	// UpsertDNSRecord creates or updates a record set in the zone.
	UpsertDNSRecord(ctx context.Context, zone *HostedZone, rset DNSRecordSet, opts ...DNSRecordUpsertOption) error
}
