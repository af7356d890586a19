package resolve

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hostwire/hostwire/domain/model"
	"github.com/hostwire/hostwire/internal/logging"
)

// facts are the provider-side results gathered while executing a plan.
// They are the only inputs of output projection; nothing is projected from
// state that did not come back from an executed step.
type facts struct {
	zone               *model.HostedZone
	cert               *model.Certificate
	lb                 model.LoadBalancerRef
	validationTimedOut bool
}

// execute advances every step of the plan that is not yet satisfied on the
// provider side. Creations are idempotent upserts keyed by natural name, so
// executing the same plan repeatedly converges instead of duplicating
// resources. The zone phase and load balancer discovery are independent and
// run concurrently.
func (u *UseCase) execute(ctx context.Context, in *Input, state *model.DesiredState, zone model.ZoneDecision, cert model.CertificateDecision, plan model.Plan) (*facts, []StepResult, error) {
	log := logging.FromContext(ctx)
	f := &facts{}
	var results []StepResult

	var zoneResult, lbResult StepResult

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := u.executeZone(gctx, in, zone)
		zoneResult = r.StepResult
		if err != nil {
			return err
		}
		f.zone = r.zone
		return nil
	})
	if plan.Has(model.StepLocateLoadBalancer) {
		g.Go(func() error {
			ref, err := u.LocateLoadBalancer(gctx, state)
			if err != nil {
				lbResult = StepResult{Kind: model.StepLocateLoadBalancer, Target: state.ClusterName, Action: "failed", Message: err.Error()}
				return err
			}
			f.lb = ref
			if ref.Found {
				lbResult = StepResult{Kind: model.StepLocateLoadBalancer, Target: state.ClusterName, Action: "ok", Message: ref.DNSName}
			} else {
				lbResult = StepResult{Kind: model.StepLocateLoadBalancer, Target: state.ClusterName, Action: "skipped", Message: "no load balancer provisioned yet"}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		for _, r := range []StepResult{zoneResult, lbResult} {
			if r.Kind != "" {
				results = append(results, r)
			}
		}
		return f, results, err
	}
	if zoneResult.Kind != "" {
		results = append(results, zoneResult)
	}

	if cert.Required {
		r, err := u.executeCertificate(ctx, in, state, f)
		results = append(results, r)
		if err != nil {
			return f, results, err
		}
	}

	if plan.Has(model.StepWaitForValidation) {
		r, err := u.executeWaitValidation(ctx, in, f)
		results = append(results, r)
		if err != nil {
			return f, results, err
		}
	}

	if lbResult.Kind != "" {
		results = append(results, lbResult)
	}

	switch {
	case plan.Has(model.StepExportDNSRecord):
		// External mode: no mutating provider call, the record is surfaced
		// through the outputs for the DNS operator to apply.
		msg := "record exported for manual creation"
		if f.lb.Found {
			msg = fmt.Sprintf("CNAME %s -> %s (manual creation)", state.Hostname, f.lb.DNSName)
		}
		log.Info(ctx, "dns record export", "hostname", state.Hostname, "lb_dns_name", f.lb.DNSName)
		results = append(results, StepResult{Kind: model.StepExportDNSRecord, Target: state.Hostname, Action: "ok", Message: msg})

	case plan.Has(model.StepEmitDNSRecord):
		r, err := u.executeEmitRecord(ctx, in, state, f)
		results = append(results, r)
		if err != nil {
			return f, results, err
		}
	}

	return f, results, nil
}

// zoneStepResult pairs a step result with the resolved zone handle.
type zoneStepResult struct {
	StepResult
	zone *model.HostedZone
}

func (u *UseCase) executeZone(ctx context.Context, in *Input, zone model.ZoneDecision) (zoneStepResult, error) {
	switch zone.Kind {
	case model.ZoneNone:
		return zoneStepResult{}, nil

	case model.ZoneCreateNew:
		if in.DryRun {
			// Read-only probe: reuse the zone when it already exists.
			z, err := u.CloudPort.GetHostedZoneByName(ctx, zone.Name)
			if err != nil {
				return zoneStepResult{StepResult: StepResult{Kind: model.StepEnsureZone, Target: zone.Name, Action: "planned", Message: "would create hosted zone"}}, nil
			}
			return zoneStepResult{
				StepResult: StepResult{Kind: model.StepEnsureZone, Target: zone.Name, Action: "ok", Message: "zone already exists: " + z.ID},
				zone:       z,
			}, nil
		}
		z, err := u.CloudPort.EnsureHostedZone(ctx, zone.Name)
		if err != nil {
			return zoneStepResult{StepResult: StepResult{Kind: model.StepEnsureZone, Target: zone.Name, Action: "failed", Message: err.Error()}}, err
		}
		return zoneStepResult{
			StepResult: StepResult{Kind: model.StepEnsureZone, Target: zone.Name, Action: "created", Message: z.ID},
			zone:       z,
		}, nil

	case model.ZoneUseByID:
		z, err := u.CloudPort.GetHostedZoneByID(ctx, zone.ID)
		if err != nil {
			return zoneStepResult{StepResult: StepResult{Kind: model.StepEnsureZone, Target: zone.ID, Action: "failed", Message: err.Error()}}, err
		}
		return zoneStepResult{
			StepResult: StepResult{Kind: model.StepEnsureZone, Target: zone.ID, Action: "ok", Message: z.Name},
			zone:       z,
		}, nil

	case model.ZoneUseByName:
		z, err := u.CloudPort.GetHostedZoneByName(ctx, zone.Name)
		if err != nil {
			return zoneStepResult{StepResult: StepResult{Kind: model.StepEnsureZone, Target: zone.Name, Action: "failed", Message: err.Error()}}, err
		}
		return zoneStepResult{
			StepResult: StepResult{Kind: model.StepEnsureZone, Target: zone.Name, Action: "ok", Message: z.ID},
			zone:       z,
		}, nil

	default:
		return zoneStepResult{}, fmt.Errorf("unknown zone decision kind: %s", zone.Kind)
	}
}

func (u *UseCase) executeCertificate(ctx context.Context, in *Input, state *model.DesiredState, f *facts) (StepResult, error) {
	if in.DryRun {
		return StepResult{Kind: model.StepIssueCertificate, Target: state.Hostname, Action: "planned", Message: "would request certificate"}, nil
	}

	cert, err := u.CloudPort.EnsureCertificate(ctx, state.Hostname)
	if err != nil {
		return StepResult{Kind: model.StepIssueCertificate, Target: state.Hostname, Action: "failed", Message: err.Error()}, err
	}
	f.cert = cert

	// Route53 mode delivers the validation records automatically by
	// upserting them into the hosted zone. External mode leaves delivery to
	// the operator; the records travel through the outputs instead.
	if state.DNSProvider == model.DNSProviderRoute53 && f.zone != nil && cert.Status == model.CertificateStatusPending {
		for _, vr := range cert.ValidationRecords {
			rset := model.DNSRecordSet{
				FQDN:  vr.Name,
				Type:  model.DNSRecordType(vr.Type),
				TTL:   u.Conventions.RecordTTL,
				RData: []string{vr.Value},
			}
			if err := u.CloudPort.UpsertDNSRecord(ctx, f.zone, rset); err != nil {
				return StepResult{Kind: model.StepIssueCertificate, Target: state.Hostname, Action: "failed", Message: err.Error()}, err
			}
		}
	}

	return StepResult{Kind: model.StepIssueCertificate, Target: state.Hostname, Action: "ok", Message: cert.ARN}, nil
}

func (u *UseCase) executeWaitValidation(ctx context.Context, in *Input, f *facts) (StepResult, error) {
	if in.DryRun || f.cert == nil {
		return StepResult{Kind: model.StepWaitForValidation, Action: "skipped", Message: "dry run"}, nil
	}
	if f.cert.Status == model.CertificateStatusIssued {
		return StepResult{Kind: model.StepWaitForValidation, Target: f.cert.ARN, Action: "ok", Message: "already validated"}, nil
	}

	timeout := in.ValidationTimeout
	if timeout <= 0 {
		timeout = DefaultValidationTimeout
	}

	cert, err := u.CloudPort.WaitCertificateValidation(ctx, f.cert.ARN, timeout)
	if errors.Is(err, model.ErrValidationTimeout) {
		// Non-fatal: the certificate stays issued-but-unvalidated and a
		// later run resumes waiting.
		f.validationTimedOut = true
		return StepResult{Kind: model.StepWaitForValidation, Target: f.cert.ARN, Action: "timeout", Message: "validation still pending"}, nil
	}
	if err != nil {
		return StepResult{Kind: model.StepWaitForValidation, Target: f.cert.ARN, Action: "failed", Message: err.Error()}, err
	}
	f.cert = cert
	return StepResult{Kind: model.StepWaitForValidation, Target: cert.ARN, Action: "ok", Message: "certificate validated"}, nil
}

func (u *UseCase) executeEmitRecord(ctx context.Context, in *Input, state *model.DesiredState, f *facts) (StepResult, error) {
	if !f.lb.Found {
		return StepResult{Kind: model.StepEmitDNSRecord, Target: state.Hostname, Action: "skipped", Message: "no load balancer to alias yet"}, nil
	}
	if f.zone == nil {
		return StepResult{Kind: model.StepEmitDNSRecord, Target: state.Hostname, Action: "planned", Message: "zone not resolved"}, nil
	}

	rset := model.DNSRecordSet{
		FQDN: state.Hostname,
		Type: model.DNSRecordTypeAlias,
		TTL:  u.Conventions.RecordTTL,
		AliasTarget: &model.AliasTarget{
			DNSName:      f.lb.DNSName,
			HostedZoneID: f.lb.HostedZoneID,
		},
	}

	var opts []model.DNSRecordUpsertOption
	if in.DryRun {
		opts = append(opts, model.WithDNSRecordUpsertDryRun())
	}

	if err := u.CloudPort.UpsertDNSRecord(ctx, f.zone, rset, opts...); err != nil {
		return StepResult{Kind: model.StepEmitDNSRecord, Target: state.Hostname, Action: "failed", Message: err.Error()}, err
	}

	action := "created"
	if in.DryRun {
		action = "planned"
	}
	return StepResult{Kind: model.StepEmitDNSRecord, Target: state.Hostname, Action: action, Message: fmt.Sprintf("ALIAS %s -> %s", state.Hostname, f.lb.DNSName)}, nil
}
