package route53

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	elbv2 "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/hostwire/hostwire/domain/model"
)

// DescribeTags accepts at most 20 resource ARNs per call.
const describeTagsBatchSize = 20

func loadBalancerFromAPI(lb types.LoadBalancer, tags map[string]string) *model.LoadBalancer {
	return &model.LoadBalancer{
		ARN:          aws.ToString(lb.LoadBalancerArn),
		Name:         aws.ToString(lb.LoadBalancerName),
		DNSName:      aws.ToString(lb.DNSName),
		HostedZoneID: aws.ToString(lb.CanonicalHostedZoneId),
		Tags:         tags,
	}
}

func tagsFromAPI(tags []types.Tag) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[aws.ToString(t.Key)] = aws.ToString(t.Value)
	}
	return m
}

// matchesTags reports whether every wanted key/value pair is present.
func matchesTags(have map[string]string, want map[string]string) bool {
	for k, v := range want {
		if have[k] != v {
			return false
		}
	}
	return true
}

func (d *driver) FindLoadBalancersByTags(ctx context.Context, tags map[string]string) ([]*model.LoadBalancer, error) {
	var all []types.LoadBalancer
	paginator := elbv2.NewDescribeLoadBalancersPaginator(d.elbv2, &elbv2.DescribeLoadBalancersInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, model.WrapProviderError("elbv2:DescribeLoadBalancers", err)
		}
		all = append(all, page.LoadBalancers...)
	}

	byARN := make(map[string]types.LoadBalancer, len(all))
	arns := make([]string, 0, len(all))
	for _, lb := range all {
		arn := aws.ToString(lb.LoadBalancerArn)
		byARN[arn] = lb
		arns = append(arns, arn)
	}

	var matched []*model.LoadBalancer
	for start := 0; start < len(arns); start += describeTagsBatchSize {
		end := start + describeTagsBatchSize
		if end > len(arns) {
			end = len(arns)
		}
		out, err := d.elbv2.DescribeTags(ctx, &elbv2.DescribeTagsInput{ResourceArns: arns[start:end]})
		if err != nil {
			return nil, model.WrapProviderError("elbv2:DescribeTags", err)
		}
		for _, td := range out.TagDescriptions {
			have := tagsFromAPI(td.Tags)
			if !matchesTags(have, tags) {
				continue
			}
			lb, ok := byARN[aws.ToString(td.ResourceArn)]
			if !ok {
				continue
			}
			matched = append(matched, loadBalancerFromAPI(lb, have))
		}
	}
	return matched, nil
}
