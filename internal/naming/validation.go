package naming

import (
	"fmt"
	"strings"
)

const (
	labelMaxLength    = 63
	hostnameMaxLength = 253
)

func validLabelByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-'
}

func validateDNSLabel(label string) error {
	if label == "" {
		return fmt.Errorf("empty label")
	}
	if len(label) > labelMaxLength {
		return fmt.Errorf("label %q exceeds %d characters", label, labelMaxLength)
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return fmt.Errorf("label %q must not start or end with a hyphen", label)
	}
	for i := 0; i < len(label); i++ {
		if !validLabelByte(label[i]) {
			return fmt.Errorf("label %q contains invalid character %q", label, label[i])
		}
	}
	return nil
}

// ValidateHostname checks that name is a well-formed lowercase DNS name
// (RFC 1123 subdomain). A trailing dot is accepted and ignored.
func ValidateHostname(name string) error {
	name = NormalizeFQDN(name)
	if name == "" {
		return fmt.Errorf("hostname must not be empty")
	}
	if len(name) > hostnameMaxLength {
		return fmt.Errorf("hostname exceeds %d characters", hostnameMaxLength)
	}
	for _, label := range strings.Split(name, ".") {
		if err := validateDNSLabel(label); err != nil {
			return fmt.Errorf("invalid hostname %q: %w", name, err)
		}
	}
	return nil
}

// ValidateZoneName checks that name is a well-formed zone name and contains
// at least two labels (a registrable domain, not a bare TLD).
func ValidateZoneName(name string) error {
	if err := ValidateHostname(name); err != nil {
		return fmt.Errorf("invalid zone name: %w", err)
	}
	if !strings.Contains(NormalizeFQDN(name), ".") {
		return fmt.Errorf("zone name %q must contain at least two labels", name)
	}
	return nil
}
