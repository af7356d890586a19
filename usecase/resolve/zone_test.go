package resolve

import (
	"testing"

	"github.com/hostwire/hostwire/domain/model"
)

func TestDecideZone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		state model.DesiredState
		want  model.ZoneDecision
	}{
		{
			name:  "disabled",
			state: model.DesiredState{FeatureEnabled: false, ZoneID: "Z1", ZoneName: "example.com"},
			want:  model.ZoneDecision{Kind: model.ZoneNone},
		},
		{
			name: "external managed elsewhere",
			state: model.DesiredState{
				FeatureEnabled: true, DNSProvider: model.DNSProviderExternal,
				ZoneID: "Z1", ZoneName: "example.com",
			},
			want: model.ZoneDecision{Kind: model.ZoneNone},
		},
		{
			name: "create new",
			state: model.DesiredState{
				FeatureEnabled: true, DNSProvider: model.DNSProviderRoute53,
				CreateZone: true, ZoneName: "example.com",
			},
			want: model.ZoneDecision{Kind: model.ZoneCreateNew, Name: "example.com"},
		},
		{
			name: "by id",
			state: model.DesiredState{
				FeatureEnabled: true, DNSProvider: model.DNSProviderRoute53,
				ZoneID: "Z1",
			},
			want: model.ZoneDecision{Kind: model.ZoneUseByID, ID: "Z1"},
		},
		{
			name: "by name",
			state: model.DesiredState{
				FeatureEnabled: true, DNSProvider: model.DNSProviderRoute53,
				ZoneName: "example.com",
			},
			want: model.ZoneDecision{Kind: model.ZoneUseByName, Name: "example.com"},
		},
		{
			name: "id takes precedence over name",
			state: model.DesiredState{
				FeatureEnabled: true, DNSProvider: model.DNSProviderRoute53,
				ZoneID: "Z1", ZoneName: "example.com",
			},
			want: model.ZoneDecision{Kind: model.ZoneUseByID, ID: "Z1"},
		},
		{
			name: "create zone beats both selectors",
			state: model.DesiredState{
				FeatureEnabled: true, DNSProvider: model.DNSProviderRoute53,
				CreateZone: true, ZoneID: "Z1", ZoneName: "example.com",
			},
			want: model.ZoneDecision{Kind: model.ZoneCreateNew, Name: "example.com"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := DecideZone(&tt.state)
			if got != tt.want {
				t.Fatalf("DecideZone() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
