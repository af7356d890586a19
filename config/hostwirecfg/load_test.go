package hostwirecfg

import (
	"os"
	"path/filepath"
	"testing"
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
naming:
  recordTTL: 60
`

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hostwireops.yml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeTempConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Version != "v1" {
		t.Errorf("Version = %q, want v1", cfg.Version)
	}
	if cfg.Provider.Driver != "route53" {
		t.Errorf("Provider.Driver = %q, want route53", cfg.Provider.Driver)
	}
	if cfg.Provider.Settings["AWS_REGION"] != "us-east-1" {
		t.Errorf("Provider.Settings[AWS_REGION] = %q", cfg.Provider.Settings["AWS_REGION"])
	}
	if !cfg.Endpoint.Enabled || !cfg.Endpoint.CreateZone || !cfg.Endpoint.WaitForValidation {
		t.Errorf("endpoint flags not decoded: %+v", cfg.Endpoint)
	}
	if cfg.Endpoint.Hostname != "argocdmmg.global" {
		t.Errorf("Hostname = %q", cfg.Endpoint.Hostname)
	}
	if cfg.Ingress.ClusterName != "mmg-prod" || cfg.Ingress.StackTag != "ingress-nginx" {
		t.Errorf("Ingress = %+v", cfg.Ingress)
	}
	if cfg.Naming.TTL() != 60 {
		t.Errorf("Naming.TTL() = %d, want 60", cfg.Naming.TTL())
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatalf("Load() error = nil, want read failure")
	}
}

func TestNamingDefaults(t *testing.T) {
	t.Parallel()

	var n Naming
	clusterKey, stackKey := n.TagKeys()
	if clusterKey != DefaultClusterTagKey || stackKey != DefaultStackTagKey {
		t.Errorf("TagKeys() = %q, %q", clusterKey, stackKey)
	}
	if n.TTL() != DefaultRecordTTL {
		t.Errorf("TTL() = %d, want %d", n.TTL(), DefaultRecordTTL)
	}
}

func TestToModels(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeTempConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	provider, state, err := cfg.ToModels()
	if err != nil {
		t.Fatalf("ToModels() error = %v", err)
	}
	if provider.Driver != "route53" || provider.ID == "" {
		t.Errorf("provider = %+v", provider)
	}
	if !state.FeatureEnabled || state.Hostname != "argocdmmg.global" {
		t.Errorf("state = %+v", state)
	}
	if state.ClusterName != "mmg-prod" || state.IngressStackTag != "ingress-nginx" {
		t.Errorf("state tags = %+v", state)
	}
}

func TestToModelsDefaultsDNSProvider(t *testing.T) {
	t.Parallel()

	cfg := &Root{Endpoint: Endpoint{Enabled: true, Hostname: "a.example.com", ZoneName: "example.com"}}
	_, state, err := cfg.ToModels()
	if err != nil {
		t.Fatalf("ToModels() error = %v", err)
	}
	if state.DNSProvider != "route53" {
		t.Errorf("DNSProvider = %q, want route53 default", state.DNSProvider)
	}
}
