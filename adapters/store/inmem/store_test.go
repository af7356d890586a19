package inmem

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hostwire/hostwire/domain/model"
)

const sampleYAML = `version: v1
provider:
  name: aws-main
  driver: route53
  settings:
    AWS_REGION: us-east-1
endpoint:
  enabled: true
  dnsProvider: route53
  createZone: true
  zoneName: argocdmmg.global
  hostname: argocdmmg.global
  waitForValidation: true
ingress:
  clusterName: mmg-prod
  stackTag: ingress-nginx
`

func TestStoreLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "hostwireops.yml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	s := NewStore()
	if err := s.LoadFromFile(context.Background(), path); err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}

	providers, err := s.ProviderRepo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(providers) != 1 {
		t.Fatalf("providers = %d, want 1", len(providers))
	}
	if providers[0].Driver != "route53" {
		t.Errorf("Driver = %q", providers[0].Driver)
	}

	if s.DesiredState == nil || s.DesiredState.State == nil {
		t.Fatalf("DesiredState not loaded")
	}
	st := s.DesiredState.State
	if st.Hostname != "argocdmmg.global" || !st.CreateZone || st.DNSProvider != model.DNSProviderRoute53 {
		t.Errorf("state = %+v", st)
	}
	if s.DesiredState.ProviderID != providers[0].ID {
		t.Errorf("ProviderID = %q, want %q", s.DesiredState.ProviderID, providers[0].ID)
	}
}

func TestRunRepositoryCRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewRunRepository()

	run := &model.ResolutionRun{Hostname: "app.example.com", Outcome: model.OutcomeComplete}
	if err := repo.Create(ctx, run); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if run.ID == "" {
		t.Fatalf("Create() did not assign an ID")
	}

	got, err := repo.Get(ctx, run.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Hostname != "app.example.com" {
		t.Errorf("Hostname = %q", got.Hostname)
	}

	// Mutating the returned copy must not affect the stored record.
	got.Hostname = "mutated.example.com"
	again, _ := repo.Get(ctx, run.ID)
	if again.Hostname != "app.example.com" {
		t.Errorf("stored record mutated through returned copy")
	}

	if err := repo.Delete(ctx, run.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Get(ctx, run.ID); err != model.ErrRunNotFound {
		t.Errorf("Get() after delete error = %v, want ErrRunNotFound", err)
	}
}
