package resolve

import (
	"context"

	"github.com/hostwire/hostwire/domain/model"
	"github.com/hostwire/hostwire/internal/logging"
)

// LocateLoadBalancer discovers the ingress load balancer by tag query.
// Zero matches is not an error: the ingress controller may not have created
// it yet and a later run picks it up. More than one match means the query is
// ambiguous and the resolver must not guess.
func (u *UseCase) LocateLoadBalancer(ctx context.Context, state *model.DesiredState) (model.LoadBalancerRef, error) {
	log := logging.FromContext(ctx)

	tags := map[string]string{
		u.Conventions.ClusterTagKey: state.ClusterName,
		u.Conventions.StackTagKey:   state.IngressStackTag,
	}

	lbs, err := u.CloudPort.FindLoadBalancersByTags(ctx, tags)
	if err != nil {
		return model.LoadBalancerRef{}, err
	}

	switch len(lbs) {
	case 0:
		log.Debug(ctx, "no load balancer matched tag query", "tags", tags)
		return model.LoadBalancerRef{Found: false}, nil
	case 1:
		log.Debug(ctx, "load balancer located", "dns_name", lbs[0].DNSName, "arn", lbs[0].ARN)
		return model.LoadBalancerRef{
			Found:        true,
			DNSName:      lbs[0].DNSName,
			HostedZoneID: lbs[0].HostedZoneID,
		}, nil
	default:
		return model.LoadBalancerRef{}, model.NewConfigError(model.ConfigErrAmbiguousLoadBalancer,
			"tag query matched %d load balancers, expected at most one", len(lbs))
	}
}
