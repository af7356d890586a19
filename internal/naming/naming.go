package naming

// Package naming provides centralized normalization and hashing of DNS names
// used across hosted zone selection, record set names and provider request
// idempotency tokens. Keeping the logic here allows future changes
// (length/algorithm) without touching call sites.

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

// defaultLength defines the hex length of hashes (bits ~ length * 4).
const defaultLength = 12

// ShortHash returns the hex SHA1 prefix of length n (clamped to digest size).
func ShortHash(s string, n int) string {
	sum := sha1.Sum([]byte(s))
	h := fmt.Sprintf("%x", sum)
	if n > len(h) {
		n = len(h)
	}
	return h[:n]
}

// IdempotencyToken derives a stable provider request token from a resource
// natural key, so repeated creation calls for the same key collapse into one
// provider-side resource.
func IdempotencyToken(naturalKey string) string {
	return ShortHash(naturalKey, defaultLength)
}

// NormalizeFQDN lowercases a DNS name and strips the trailing dot.
func NormalizeFQDN(fqdn string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(fqdn), "."))
}

// ZoneContains reports whether fqdn equals the zone name or is a subdomain of it.
func ZoneContains(zoneName, fqdn string) bool {
	zoneName = NormalizeFQDN(zoneName)
	fqdn = NormalizeFQDN(fqdn)
	return fqdn == zoneName || strings.HasSuffix(fqdn, "."+zoneName)
}

// ZoneRelativeName converts an FQDN to a zone-relative record set name.
// APEX records are represented as "@".
func ZoneRelativeName(fqdn, zoneName string) string {
	fqdn = NormalizeFQDN(fqdn)
	zoneName = NormalizeFQDN(zoneName)

	if fqdn == zoneName {
		return "@"
	}
	if strings.HasSuffix(fqdn, "."+zoneName) {
		return strings.TrimSuffix(fqdn, "."+zoneName)
	}

	// Fallback: should not happen if zone selection is correct
	return fqdn
}
