package route53

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/acm"
	"github.com/aws/aws-sdk-go-v2/service/acm/types"
	"github.com/hostwire/hostwire/domain/model"
	"github.com/hostwire/hostwire/internal/naming"
)

func certificateStatusFromAPI(s types.CertificateStatus) model.CertificateStatus {
	switch s {
	case types.CertificateStatusIssued:
		return model.CertificateStatusIssued
	case types.CertificateStatusPendingValidation:
		return model.CertificateStatusPending
	default:
		return model.CertificateStatusFailed
	}
}

func certificateFromAPI(c *types.CertificateDetail) *model.Certificate {
	cert := &model.Certificate{
		ARN:    aws.ToString(c.CertificateArn),
		Domain: aws.ToString(c.DomainName),
		Status: certificateStatusFromAPI(c.Status),
	}
	for _, dv := range c.DomainValidationOptions {
		if dv.ResourceRecord == nil {
			continue
		}
		cert.ValidationRecords = append(cert.ValidationRecords, model.ValidationRecord{
			Domain: aws.ToString(dv.DomainName),
			Name:   aws.ToString(dv.ResourceRecord.Name),
			Type:   string(dv.ResourceRecord.Type),
			Value:  aws.ToString(dv.ResourceRecord.Value),
		})
	}
	return cert
}

// findCertificateByDomain scans existing certificates for an exact domain
// match, preferring one that is already issued.
func (d *driver) findCertificateByDomain(ctx context.Context, domain string) (string, error) {
	var pendingARN string
	input := &acm.ListCertificatesInput{
		CertificateStatuses: []types.CertificateStatus{
			types.CertificateStatusIssued,
			types.CertificateStatusPendingValidation,
		},
	}
	for {
		out, err := d.acm.ListCertificates(ctx, input)
		if err != nil {
			return "", model.WrapProviderError("acm:ListCertificates", err)
		}
		for _, cs := range out.CertificateSummaryList {
			if aws.ToString(cs.DomainName) != domain {
				continue
			}
			if cs.Status == types.CertificateStatusIssued {
				return aws.ToString(cs.CertificateArn), nil
			}
			if pendingARN == "" {
				pendingARN = aws.ToString(cs.CertificateArn)
			}
		}
		if out.NextToken == nil {
			return pendingARN, nil
		}
		input.NextToken = out.NextToken
	}
}

func (d *driver) EnsureCertificate(ctx context.Context, domain string) (*model.Certificate, error) {
	domain = naming.NormalizeFQDN(domain)

	arn, err := d.findCertificateByDomain(ctx, domain)
	if err != nil {
		return nil, err
	}
	if arn == "" {
		out, err := d.acm.RequestCertificate(ctx, &acm.RequestCertificateInput{
			DomainName:       aws.String(domain),
			ValidationMethod: types.ValidationMethodDns,
			IdempotencyToken: aws.String(naming.IdempotencyToken("cert:" + domain)),
		})
		if err != nil {
			return nil, model.WrapProviderError("acm:RequestCertificate", err)
		}
		arn = aws.ToString(out.CertificateArn)
	}

	return d.describeCertificate(ctx, arn)
}

// describeCertificate fetches certificate details, retrying briefly because
// validation records are filled in asynchronously after RequestCertificate.
func (d *driver) describeCertificate(ctx context.Context, arn string) (*model.Certificate, error) {
	var cert *model.Certificate
	for attempt := 0; attempt < 10; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(2 * time.Second):
			}
		}
		out, err := d.acm.DescribeCertificate(ctx, &acm.DescribeCertificateInput{CertificateArn: aws.String(arn)})
		if err != nil {
			return nil, model.WrapProviderError("acm:DescribeCertificate", err)
		}
		cert = certificateFromAPI(out.Certificate)
		if cert.Status != model.CertificateStatusPending || len(cert.ValidationRecords) > 0 {
			return cert, nil
		}
	}
	return cert, nil
}

func (d *driver) WaitCertificateValidation(ctx context.Context, arn string, timeout time.Duration) (*model.Certificate, error) {
	waiter := acm.NewCertificateValidatedWaiter(d.acm)
	err := waiter.Wait(ctx, &acm.DescribeCertificateInput{CertificateArn: aws.String(arn)}, timeout)
	if err != nil {
		// Distinguish "still pending when the wait ran out" from a hard
		// provider failure: the former resumes on a later run.
		cert, derr := d.describeCertificate(ctx, arn)
		if derr == nil && cert.Status == model.CertificateStatusPending {
			return cert, model.ErrValidationTimeout
		}
		return nil, model.WrapProviderError("acm:WaitCertificateValidation", err)
	}
	return d.describeCertificate(ctx, arn)
}
