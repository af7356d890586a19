package external

import (
	"context"
	"fmt"
	"strings"
	"time"

	clouddrv "github.com/hostwire/hostwire/adapters/drivers/cloud"
	_ "github.com/hostwire/hostwire/adapters/drivers/cloud/route53" // default underlying driver
	"github.com/hostwire/hostwire/domain/model"
	"github.com/hostwire/hostwire/internal/logging"
)

// driver decorates an underlying cloud driver for operator-managed DNS.
// Certificate issuance and load balancer discovery pass through; hosted
// zone mutations are refused and record upserts are logged for manual
// application instead of being written.
type driver struct {
	underlying clouddrv.Driver
}

// ID returns the driver identifier.
func (d *driver) ID() string { return "external" }

// init registers the external driver.
func init() {
	clouddrv.Register("external", func(settings map[string]string) (clouddrv.Driver, error) {
		name := "route53"
		if settings != nil {
			if v := strings.TrimSpace(settings["CLOUD_DRIVER"]); v != "" {
				name = v
			}
		}
		if name == "external" {
			return nil, fmt.Errorf("external driver cannot decorate itself")
		}
		factory, ok := clouddrv.GetDriverFactory(name)
		if !ok {
			return nil, fmt.Errorf("unknown underlying cloud driver %q", name)
		}
		u, err := factory(settings)
		if err != nil {
			return nil, err
		}
		return &driver{underlying: u}, nil
	})
}

func (d *driver) EnsureHostedZone(ctx context.Context, name string) (*model.HostedZone, error) {
	return nil, fmt.Errorf("hosted zone %q is managed outside this tool", name)
}

func (d *driver) GetHostedZoneByID(ctx context.Context, id string) (*model.HostedZone, error) {
	return nil, fmt.Errorf("hosted zone %q is managed outside this tool", id)
}

func (d *driver) GetHostedZoneByName(ctx context.Context, name string) (*model.HostedZone, error) {
	return nil, fmt.Errorf("hosted zone %q is managed outside this tool", name)
}

func (d *driver) EnsureCertificate(ctx context.Context, domain string) (*model.Certificate, error) {
	return d.underlying.EnsureCertificate(ctx, domain)
}

func (d *driver) WaitCertificateValidation(ctx context.Context, arn string, timeout time.Duration) (*model.Certificate, error) {
	return d.underlying.WaitCertificateValidation(ctx, arn, timeout)
}

func (d *driver) FindLoadBalancersByTags(ctx context.Context, tags map[string]string) ([]*model.LoadBalancer, error) {
	return d.underlying.FindLoadBalancersByTags(ctx, tags)
}

func (d *driver) UpsertDNSRecord(ctx context.Context, zone *model.HostedZone, rset model.DNSRecordSet, opts ...model.DNSRecordUpsertOption) error {
	logging.FromContext(ctx).Info(ctx, "dns record for manual application",
		"fqdn", rset.FQDN, "type", rset.Type, "rdata", strings.Join(rset.RData, " "))
	return nil
}
