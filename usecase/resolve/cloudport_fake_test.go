package resolve

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hostwire/hostwire/domain/model"
)

// fakeCloudPort is an in-memory CloudPort with natural-key idempotent
// creations, mirroring real provider semantics closely enough for the
// resolver contract tests.
type fakeCloudPort struct {
	mu    sync.Mutex
	calls []string

	zones   map[string]*model.HostedZone // by name
	cert    *model.Certificate
	lbs     []*model.LoadBalancer
	upserts []model.DNSRecordSet

	findErr error
	waitErr error
}

func newFakeCloudPort() *fakeCloudPort {
	return &fakeCloudPort{zones: map[string]*model.HostedZone{}}
}

func (p *fakeCloudPort) record(call string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, call)
}

func (p *fakeCloudPort) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

func (p *fakeCloudPort) upsertCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.upserts)
}

func (p *fakeCloudPort) EnsureHostedZone(ctx context.Context, name string) (*model.HostedZone, error) {
	p.record("EnsureHostedZone")
	p.mu.Lock()
	defer p.mu.Unlock()
	if z, ok := p.zones[name]; ok {
		return z, nil
	}
	z := &model.HostedZone{
		ID:          "Z" + name,
		Name:        name,
		NameServers: []string{"ns-1.example-dns.net", "ns-2.example-dns.org"},
	}
	p.zones[name] = z
	return z, nil
}

func (p *fakeCloudPort) GetHostedZoneByID(ctx context.Context, id string) (*model.HostedZone, error) {
	p.record("GetHostedZoneByID")
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, z := range p.zones {
		if z.ID == id {
			return z, nil
		}
	}
	return nil, model.WrapProviderError("fake:GetHostedZoneByID", fmt.Errorf("zone %s not found", id))
}

func (p *fakeCloudPort) GetHostedZoneByName(ctx context.Context, name string) (*model.HostedZone, error) {
	p.record("GetHostedZoneByName")
	p.mu.Lock()
	defer p.mu.Unlock()
	if z, ok := p.zones[name]; ok {
		return z, nil
	}
	return nil, model.WrapProviderError("fake:GetHostedZoneByName", fmt.Errorf("zone %s not found", name))
}

func (p *fakeCloudPort) EnsureCertificate(ctx context.Context, domain string) (*model.Certificate, error) {
	p.record("EnsureCertificate")
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cert == nil {
		p.cert = &model.Certificate{
			ARN:    "arn:aws:acm:us-east-1:111111111111:certificate/" + domain,
			Domain: domain,
			Status: model.CertificateStatusPending,
			ValidationRecords: []model.ValidationRecord{
				{Domain: domain, Name: "_abc123." + domain, Type: "CNAME", Value: "_xyz.acm-validations.example."},
			},
		}
	}
	c := *p.cert
	return &c, nil
}

func (p *fakeCloudPort) WaitCertificateValidation(ctx context.Context, arn string, timeout time.Duration) (*model.Certificate, error) {
	p.record("WaitCertificateValidation")
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.waitErr != nil {
		return nil, p.waitErr
	}
	p.cert.Status = model.CertificateStatusIssued
	c := *p.cert
	return &c, nil
}

func (p *fakeCloudPort) FindLoadBalancersByTags(ctx context.Context, tags map[string]string) ([]*model.LoadBalancer, error) {
	p.record("FindLoadBalancersByTags")
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.findErr != nil {
		return nil, p.findErr
	}
	return p.lbs, nil
}

func (p *fakeCloudPort) UpsertDNSRecord(ctx context.Context, zone *model.HostedZone, rset model.DNSRecordSet, opts ...model.DNSRecordUpsertOption) error {
	p.record("UpsertDNSRecord")
	var o model.DNSRecordUpsertOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.DryRun {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.upserts = append(p.upserts, rset)
	return nil
}

func newTestUseCase(port *fakeCloudPort) *UseCase {
	return &UseCase{CloudPort: port, Conventions: DefaultConventions()}
}
