package hostwirecfg

import (
	"strings"
	"testing"
)

func TestRootValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		root    Root
		wantErr string
	}{
		{
			name: "valid route53",
			root: Root{
				Provider: Provider{Driver: "route53"},
				Endpoint: Endpoint{Enabled: true, DNSProvider: "route53", ZoneName: "example.com", Hostname: "app.example.com"},
			},
		},
		{
			name: "disabled endpoint skips field checks",
			root: Root{
				Provider: Provider{Driver: "route53"},
				Endpoint: Endpoint{Enabled: false, DNSProvider: "bogus", Hostname: "UPPER_CASE"},
			},
		},
		{
			name: "missing driver",
			root: Root{
				Endpoint: Endpoint{Enabled: true, Hostname: "app.example.com"},
			},
			wantErr: "driver is required",
		},
		{
			name: "invalid dns provider",
			root: Root{
				Provider: Provider{Driver: "route53"},
				Endpoint: Endpoint{Enabled: true, DNSProvider: "cloudflare", Hostname: "app.example.com"},
			},
			wantErr: "invalid value",
		},
		{
			name: "invalid hostname",
			root: Root{
				Provider: Provider{Driver: "route53"},
				Endpoint: Endpoint{Enabled: true, Hostname: "bad_host.example.com"},
			},
			wantErr: "hostname",
		},
		{
			name: "create zone without name",
			root: Root{
				Provider: Provider{Driver: "route53"},
				Endpoint: Endpoint{Enabled: true, CreateZone: true, Hostname: "app.example.com"},
			},
			wantErr: "createZone requires zoneName",
		},
		{
			name: "single label zone name",
			root: Root{
				Provider: Provider{Driver: "route53"},
				Endpoint: Endpoint{Enabled: true, ZoneName: "com", Hostname: "app.example.com"},
			},
			wantErr: "two labels",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.root.Validate()
			switch {
			case tt.wantErr == "" && err != nil:
				t.Fatalf("Validate() error = %v, want nil", err)
			case tt.wantErr != "" && err == nil:
				t.Fatalf("Validate() error = nil, want contains %q", tt.wantErr)
			case tt.wantErr != "" && err != nil && !strings.Contains(err.Error(), tt.wantErr):
				t.Fatalf("Validate() error = %v, want contains %q", err, tt.wantErr)
			}
		})
	}
}
