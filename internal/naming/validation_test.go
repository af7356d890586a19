package naming

import (
	"strings"
	"testing"
)

func TestValidateHostname(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid", value: "app.example.com", wantErr: false},
		{name: "valid single label", value: "localhost", wantErr: false},
		{name: "valid trailing dot", value: "app.example.com.", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "empty label", value: "app..example.com", wantErr: true},
		{name: "starts with hyphen", value: "-app.example.com", wantErr: true},
		{name: "ends with hyphen", value: "app-.example.com", wantErr: true},
		{name: "underscore", value: "my_app.example.com", wantErr: true},
		{name: "label too long", value: strings.Repeat("a", 64) + ".example.com", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateHostname(tc.value)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error but got nil")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateZoneName(t *testing.T) {
	if err := ValidateZoneName("example.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateZoneName("com"); err == nil {
		t.Fatalf("expected error for single-label zone")
	}
	if err := ValidateZoneName(""); err == nil {
		t.Fatalf("expected error for empty zone name")
	}
}
