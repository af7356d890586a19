package resolve

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hostwire/hostwire/domain/model"
)

type fakeProviderRepo struct {
	mu    sync.Mutex
	items []*model.Provider
}

func (r *fakeProviderRepo) Create(_ context.Context, p *model.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = "prov-test"
	}
	c := *p
	r.items = append(r.items, &c)
	return nil
}

func (r *fakeProviderRepo) Get(_ context.Context, id string) (*model.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, model.ErrProviderNotFound
}

func (r *fakeProviderRepo) List(_ context.Context) ([]*model.Provider, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.Provider, 0, len(r.items))
	for _, p := range r.items {
		c := *p
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeProviderRepo) Update(_ context.Context, p *model.Provider) error { return nil }
func (r *fakeProviderRepo) Delete(_ context.Context, id string) error { return nil }

type fakeRunHistory struct {
	mu   sync.Mutex
	runs []*model.ResolutionRun
}

func (r *fakeRunHistory) Create(_ context.Context, run *model.ResolutionRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	run.ID = "run-test"
	run.CreatedAt = time.Now()
	c := *run
	r.runs = append(r.runs, &c)
	return nil
}

func (r *fakeRunHistory) Get(_ context.Context, id string) (*model.ResolutionRun, error) {
	return nil, model.ErrRunNotFound
}

func (r *fakeRunHistory) List(_ context.Context) ([]*model.ResolutionRun, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*model.ResolutionRun{}, r.runs...), nil
}

func (r *fakeRunHistory) Update(_ context.Context, run *model.ResolutionRun) error { return nil }
func (r *fakeRunHistory) Delete(_ context.Context, id string) error { return nil }

func (r *fakeRunHistory) last(t *testing.T) *model.ResolutionRun {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.runs) == 0 {
		t.Fatal("no run recorded")
	}
	return r.runs[len(r.runs)-1]
}

func TestResolveReportsZoneStepResult(t *testing.T) {
	t.Parallel()

	port := newFakeCloudPort()
	uc := newTestUseCase(port)

	state := validState()
	state.CreateZone = true
	out, err := uc.Resolve(context.Background(), &Input{State: &state})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	var zoneStep *StepResult
	for i := range out.Steps {
		if out.Steps[i].Kind == model.StepEnsureZone {
			zoneStep = &out.Steps[i]
		}
	}
	if zoneStep == nil {
		t.Fatalf("Steps = %+v, want an ensure_zone result", out.Steps)
	}
	if zoneStep.Action != "created" || zoneStep.Target != state.ZoneName {
		t.Errorf("zone step = %+v, want created %s", zoneStep, state.ZoneName)
	}
}

func TestResolveProviderFailureOutcome(t *testing.T) {
	t.Parallel()

	port := newFakeCloudPort() // zone lookup fails: nothing preloaded
	runs := &fakeRunHistory{}
	uc := newTestUseCase(port)
	uc.Repos = &Repos{Run: runs}

	state := validState()
	out, err := uc.Resolve(context.Background(), &Input{State: &state})
	if err == nil {
		t.Fatal("Resolve() error = nil, want provider error")
	}
	if out.Outcome != model.OutcomeFailed {
		t.Errorf("Outcome = %s, want %s", out.Outcome, model.OutcomeFailed)
	}
	rec := runs.last(t)
	if rec.Outcome != model.OutcomeFailed {
		t.Errorf("recorded Outcome = %s, want %s", rec.Outcome, model.OutcomeFailed)
	}
	if rec.Error == "" {
		t.Error("recorded Error is empty, want failure summary")
	}
}

func TestResolveRunLinksToProviderRow(t *testing.T) {
	t.Parallel()

	port := newFakeCloudPort()
	port.zones["example.com"] = &model.HostedZone{ID: "Z1", Name: "example.com", NameServers: []string{"ns-1.example-dns.net"}}
	providers := &fakeProviderRepo{}
	runs := &fakeRunHistory{}
	uc := newTestUseCase(port)
	uc.Repos = &Repos{Provider: providers, Run: runs}
	uc.Provider = &model.Provider{Name: "aws", Driver: "route53"}

	state := validState()
	for i := 0; i < 2; i++ {
		if _, err := uc.Resolve(context.Background(), &Input{State: &state}); err != nil {
			t.Fatalf("Resolve() #%d error = %v", i+1, err)
		}
	}

	rows, err := providers.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("provider rows = %d, want 1 after repeated runs", len(rows))
	}
	for _, rec := range runs.runs {
		if rec.ProviderID != rows[0].ID {
			t.Errorf("run ProviderID = %q, want %q", rec.ProviderID, rows[0].ID)
		}
	}
}
