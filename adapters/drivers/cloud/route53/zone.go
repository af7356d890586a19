package route53

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsroute53 "github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/hostwire/hostwire/domain/model"
	"github.com/hostwire/hostwire/internal/naming"
)

// hostedZoneFromAPI converts a Route53 hosted zone plus its delegation set
// into the domain shape. The "/hostedzone/" prefix of the API identifier is
// stripped so IDs round-trip with user-supplied zone IDs.
func hostedZoneFromAPI(hz *types.HostedZone, ds *types.DelegationSet) *model.HostedZone {
	z := &model.HostedZone{
		ID:   zoneIDFromAPI(aws.ToString(hz.Id)),
		Name: naming.NormalizeFQDN(aws.ToString(hz.Name)),
	}
	if ds != nil {
		z.NameServers = append(z.NameServers, ds.NameServers...)
	}
	return z
}

func zoneIDFromAPI(id string) string {
	const prefix = "/hostedzone/"
	if len(id) > len(prefix) && id[:len(prefix)] == prefix {
		return id[len(prefix):]
	}
	return id
}

func (d *driver) EnsureHostedZone(ctx context.Context, name string) (*model.HostedZone, error) {
	name = naming.NormalizeFQDN(name)
	if z, err := d.GetHostedZoneByName(ctx, name); err == nil {
		return z, nil
	}

	// The caller reference derives from the zone name, so retried creations
	// for the same zone collapse into one provider-side resource.
	out, err := d.route53.CreateHostedZone(ctx, &awsroute53.CreateHostedZoneInput{
		Name:            aws.String(name),
		CallerReference: aws.String("hostwire-" + naming.IdempotencyToken("zone:"+name)),
	})
	if err != nil {
		return nil, model.WrapProviderError("route53:CreateHostedZone", err)
	}
	return hostedZoneFromAPI(out.HostedZone, out.DelegationSet), nil
}

func (d *driver) GetHostedZoneByID(ctx context.Context, id string) (*model.HostedZone, error) {
	out, err := d.route53.GetHostedZone(ctx, &awsroute53.GetHostedZoneInput{Id: aws.String(id)})
	if err != nil {
		return nil, model.WrapProviderError("route53:GetHostedZone", err)
	}
	return hostedZoneFromAPI(out.HostedZone, out.DelegationSet), nil
}

func (d *driver) GetHostedZoneByName(ctx context.Context, name string) (*model.HostedZone, error) {
	name = naming.NormalizeFQDN(name)
	out, err := d.route53.ListHostedZonesByName(ctx, &awsroute53.ListHostedZonesByNameInput{
		DNSName:  aws.String(name),
		MaxItems: aws.Int32(1),
	})
	if err != nil {
		return nil, model.WrapProviderError("route53:ListHostedZonesByName", err)
	}
	for _, hz := range out.HostedZones {
		if naming.NormalizeFQDN(aws.ToString(hz.Name)) != name {
			continue
		}
		// ListHostedZonesByName carries no delegation set; fetch it so name
		// servers are available to callers.
		return d.GetHostedZoneByID(ctx, zoneIDFromAPI(aws.ToString(hz.Id)))
	}
	return nil, model.WrapProviderError("route53:ListHostedZonesByName", fmt.Errorf("hosted zone %q not found", name))
}
