package route53

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsroute53 "github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/hostwire/hostwire/domain/model"
	"github.com/hostwire/hostwire/internal/logging"
	"github.com/hostwire/hostwire/internal/naming"
)

// recordSetToAPI maps a domain record set to the Route53 shape. Alias
// records become type A with an AliasTarget, which is how Route53
// represents zone-apex aliasing to a load balancer.
func recordSetToAPI(rset model.DNSRecordSet) (*types.ResourceRecordSet, error) {
	rrs := &types.ResourceRecordSet{
		Name: aws.String(naming.NormalizeFQDN(rset.FQDN)),
	}

	if rset.Type == model.DNSRecordTypeAlias {
		if rset.AliasTarget == nil {
			return nil, fmt.Errorf("alias record %q has no alias target", rset.FQDN)
		}
		rrs.Type = types.RRTypeA
		rrs.AliasTarget = &types.AliasTarget{
			DNSName:              aws.String(rset.AliasTarget.DNSName),
			HostedZoneId:         aws.String(rset.AliasTarget.HostedZoneID),
			EvaluateTargetHealth: false,
		}
		return rrs, nil
	}

	if len(rset.RData) == 0 {
		return nil, fmt.Errorf("record %q has no data", rset.FQDN)
	}
	rrs.Type = types.RRType(rset.Type)
	rrs.TTL = aws.Int64(int64(rset.TTL))
	for _, v := range rset.RData {
		rrs.ResourceRecords = append(rrs.ResourceRecords, types.ResourceRecord{Value: aws.String(v)})
	}
	return rrs, nil
}

func (d *driver) UpsertDNSRecord(ctx context.Context, zone *model.HostedZone, rset model.DNSRecordSet, opts ...model.DNSRecordUpsertOption) error {
	var o model.DNSRecordUpsertOptions
	for _, opt := range opts {
		opt(&o)
	}

	rrs, err := recordSetToAPI(rset)
	if err != nil {
		return err
	}

	if o.DryRun {
		logging.FromContext(ctx).Info(ctx, "dry run: would upsert dns record",
			"zone_id", zone.ID, "fqdn", rset.FQDN, "type", rset.Type)
		return nil
	}

	_, err = d.route53.ChangeResourceRecordSets(ctx, &awsroute53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(zone.ID),
		ChangeBatch: &types.ChangeBatch{
			Changes: []types.Change{{
				Action:            types.ChangeActionUpsert,
				ResourceRecordSet: rrs,
			}},
		},
	})
	if err != nil {
		return model.WrapProviderError("route53:ChangeResourceRecordSets", err)
	}
	return nil
}
