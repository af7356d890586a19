package route53

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/acm"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	awsroute53 "github.com/aws/aws-sdk-go-v2/service/route53"
	clouddrv "github.com/hostwire/hostwire/adapters/drivers/cloud"
)

// Route53API is the subset of the Route53 client used by the driver.
type Route53API interface {
	ListHostedZonesByName(ctx context.Context, params *awsroute53.ListHostedZonesByNameInput, optFns ...func(*awsroute53.Options)) (*awsroute53.ListHostedZonesByNameOutput, error)
	CreateHostedZone(ctx context.Context, params *awsroute53.CreateHostedZoneInput, optFns ...func(*awsroute53.Options)) (*awsroute53.CreateHostedZoneOutput, error)
	GetHostedZone(ctx context.Context, params *awsroute53.GetHostedZoneInput, optFns ...func(*awsroute53.Options)) (*awsroute53.GetHostedZoneOutput, error)
	ChangeResourceRecordSets(ctx context.Context, params *awsroute53.ChangeResourceRecordSetsInput, optFns ...func(*awsroute53.Options)) (*awsroute53.ChangeResourceRecordSetsOutput, error)
}

// ACMAPI is the subset of the ACM client used by the driver. It satisfies
// acm.DescribeCertificateAPIClient so the SDK validation waiter can consume
// it directly.
type ACMAPI interface {
	ListCertificates(ctx context.Context, params *acm.ListCertificatesInput, optFns ...func(*acm.Options)) (*acm.ListCertificatesOutput, error)
	RequestCertificate(ctx context.Context, params *acm.RequestCertificateInput, optFns ...func(*acm.Options)) (*acm.RequestCertificateOutput, error)
	DescribeCertificate(ctx context.Context, params *acm.DescribeCertificateInput, optFns ...func(*acm.Options)) (*acm.DescribeCertificateOutput, error)
}

// ELBV2API is the subset of the ELBv2 client used by the driver.
type ELBV2API interface {
	DescribeLoadBalancers(ctx context.Context, params *elbv2.DescribeLoadBalancersInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeLoadBalancersOutput, error)
	DescribeTags(ctx context.Context, params *elbv2.DescribeTagsInput, optFns ...func(*elbv2.Options)) (*elbv2.DescribeTagsOutput, error)
}

// driver implements the Route53 cloud driver backed by Route53, ACM and
// ELBv2.
type driver struct {
	route53 Route53API
	acm     ACMAPI
	elbv2   ELBV2API
}

// ID returns the driver identifier.
func (d *driver) ID() string { return "route53" }

// init registers the Route53 driver.
func init() {
	clouddrv.Register("route53", func(settings map[string]string) (clouddrv.Driver, error) {
		get := func(k string) string {
			if settings == nil {
				return ""
			}
			return strings.TrimSpace(settings[k])
		}

		region := get("AWS_REGION")
		if region == "" {
			return nil, fmt.Errorf("missing required route53 setting: AWS_REGION")
		}

		opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(region)}
		if profile := get("AWS_PROFILE"); profile != "" {
			opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
		}
		cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		return &driver{
			route53: awsroute53.NewFromConfig(cfg),
			acm:     acm.NewFromConfig(cfg),
			elbv2:   elbv2.NewFromConfig(cfg),
		}, nil
	})
}
