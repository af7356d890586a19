package model

import (
	"errors"
	"fmt"
)

// ConfigErrorKind identifies a desired-state validation failure.
type ConfigErrorKind string

const (
	ConfigErrMissingZoneSelector   ConfigErrorKind = "missing_zone_selector"
	ConfigErrMissingHostname       ConfigErrorKind = "missing_hostname"
	ConfigErrMissingClusterName    ConfigErrorKind = "missing_cluster_name"
	ConfigErrInvalidDNSProvider    ConfigErrorKind = "invalid_dns_provider"
	ConfigErrAmbiguousLoadBalancer ConfigErrorKind = "ambiguous_load_balancer"
)

// ConfigError is a fatal desired-state error. Resolution aborts before any
// mutating provider call when one is raised.
type ConfigError struct {
	Kind    ConfigErrorKind
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error (%s): %s", e.Kind, e.Message)
}

// NewConfigError builds a ConfigError with a formatted message.
func NewConfigError(kind ConfigErrorKind, format string, args ...any) *ConfigError {
	return &ConfigError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsConfigError unwraps err into a *ConfigError if it is one.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// ErrValidationTimeout is the non-fatal outcome of WaitForValidation running
// out of time. The certificate stays issued but unvalidated and a later run
// resumes waiting.
var ErrValidationTimeout = errors.New("certificate validation timed out")

var (
	ErrProviderNotFound = errors.New("provider not found")
	ErrRunNotFound      = errors.New("resolution run not found")
)

// ProviderError wraps an underlying cloud API failure. It is propagated
// unmodified and never retried internally; retry discipline belongs to the
// caller.
type ProviderError struct {
	Op  string // provider operation, e.g. "route53:CreateHostedZone"
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// WrapProviderError annotates err with the failing provider operation.
func WrapProviderError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Op: op, Err: err}
}
