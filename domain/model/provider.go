package model

import "time"

// Provider represents a cloud provider configuration (e.g., route53, external).
type Provider struct {
	ID        string
	Name      string
	Driver    string // e.g., "route53", "external"
	Settings  map[string]string
	CreatedAt time.Time
	UpdatedAt time.Time
}
