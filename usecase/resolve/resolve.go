package resolve

import (
	"context"
	"fmt"

	"github.com/hostwire/hostwire/domain/model"
	"github.com/hostwire/hostwire/internal/logging"
	"github.com/hostwire/hostwire/internal/naming"
)

// Resolve performs one resolution pass: validate the desired state, decide
// zone and certificate handling, build the ordered plan, execute the steps
// that are not yet satisfied, and project the outputs.
//
// Fatal configuration problems (including an ambiguous load balancer query)
// are returned inside Output.ConfigErrors with a nil error; the provider is
// never mutated in that case. Provider failures are returned as the error.
func (u *UseCase) Resolve(ctx context.Context, in *Input) (*Output, error) {
	if in == nil || in.State == nil {
		return nil, fmt.Errorf("input state is nil")
	}
	log := logging.FromContext(ctx)
	state := in.State

	if !state.FeatureEnabled {
		// Disabled endpoint: no decisions, no provider calls, every output
		// at its sentinel.
		out := &Output{Outcome: model.OutcomeDisabled}
		u.recordRun(ctx, state, out)
		return out, nil
	}

	if cfgErrs := Validate(state); len(cfgErrs) > 0 {
		out := &Output{Outcome: model.OutcomeInvalid, ConfigErrors: cfgErrs}
		u.recordRun(ctx, state, out)
		return out, nil
	}

	zone := DecideZone(state)
	cert := DecideCertificate(state, zone)
	plan := BuildPlan(state, zone, cert)

	log.Info(ctx, "resolution plan built",
		"hostname", state.Hostname,
		"dns_provider", state.DNSProvider,
		"zone_decision", zone.Kind,
		"wait_for_validation", cert.WaitForValidation,
		"steps", len(plan.Steps),
	)

	f, steps, err := u.execute(ctx, in, state, zone, cert, plan)
	out := &Output{
		Outcome: model.OutcomeComplete,
		Outputs: project(state, f),
		Plan:    plan,
		Steps:   steps,
	}

	if err != nil {
		if ce, ok := model.AsConfigError(err); ok {
			// Fatal but not a provider failure: surfaced alongside the
			// partial outputs, no mutation was attempted past it.
			out.Outcome = model.OutcomeInvalid
			out.ConfigErrors = append(out.ConfigErrors, ce)
			u.recordRun(ctx, state, out)
			return out, nil
		}
		out.Outcome = model.OutcomeFailed
		u.recordRunError(ctx, state, out, err)
		return out, err
	}

	if f.validationTimedOut || (f.cert != nil && f.cert.Status == model.CertificateStatusPending) {
		out.Outcome = model.OutcomePendingValidation
	}

	u.recordRun(ctx, state, out)
	return out, nil
}

// Plan returns the ordered step sequence for the desired state without
// executing anything, for inspection by the caller.
func (u *UseCase) Plan(ctx context.Context, state *model.DesiredState) (*Output, error) {
	if state == nil {
		return nil, fmt.Errorf("state is nil")
	}
	if !state.FeatureEnabled {
		return &Output{Outcome: model.OutcomeDisabled}, nil
	}
	if cfgErrs := Validate(state); len(cfgErrs) > 0 {
		return &Output{Outcome: model.OutcomeInvalid, ConfigErrors: cfgErrs}, nil
	}
	zone := DecideZone(state)
	cert := DecideCertificate(state, zone)
	return &Output{Outcome: model.OutcomeComplete, Plan: BuildPlan(state, zone, cert)}, nil
}

// recordRun persists the run outcome to the run history, best effort.
func (u *UseCase) recordRun(ctx context.Context, state *model.DesiredState, out *Output) {
	u.persistRun(ctx, state, out, "")
}

func (u *UseCase) recordRunError(ctx context.Context, state *model.DesiredState, out *Output, runErr error) {
	u.persistRun(ctx, state, out, runErr.Error())
}

func (u *UseCase) persistRun(ctx context.Context, state *model.DesiredState, out *Output, errSummary string) {
	if u.Repos == nil || u.Repos.Run == nil {
		return
	}
	name, err := naming.NewCompactID()
	if err != nil {
		name = ""
	}
	if errSummary == "" && len(out.ConfigErrors) > 0 {
		errSummary = out.ConfigErrors[0].Error()
	}
	run := &model.ResolutionRun{
		Name:                name,
		ProviderID:          u.providerID(ctx),
		Hostname:            state.Hostname,
		DNSProvider:         state.DNSProvider,
		Outcome:             out.Outcome,
		ZoneID:              out.Outputs.ZoneID,
		CertificateARN:      out.Outputs.CertificateARN,
		LoadBalancerDNSName: out.Outputs.LoadBalancerDNSName,
		Error:               errSummary,
	}
	if err := u.Repos.Run.Create(ctx, run); err != nil {
		// Run history is an audit trail; losing one entry must not fail the
		// resolution itself.
		logging.FromContext(ctx).Warn(ctx, "failed to record resolution run", "err", err)
	}
}

// providerID returns the persisted row ID of the provider serving this use
// case, creating the row on first use so runs can link back to it. Returns
// empty when no provider repository is wired.
func (u *UseCase) providerID(ctx context.Context) string {
	if u.Provider == nil || u.Repos == nil || u.Repos.Provider == nil {
		return ""
	}
	if u.Provider.ID != "" {
		if _, err := u.Repos.Provider.Get(ctx, u.Provider.ID); err == nil {
			return u.Provider.ID
		}
	}
	if providers, err := u.Repos.Provider.List(ctx); err == nil {
		for _, p := range providers {
			if p.Name == u.Provider.Name && p.Driver == u.Provider.Driver {
				u.Provider.ID = p.ID
				return p.ID
			}
		}
	}
	if err := u.Repos.Provider.Create(ctx, u.Provider); err != nil {
		logging.FromContext(ctx).Warn(ctx, "failed to record provider", "err", err)
		return ""
	}
	return u.Provider.ID
}
