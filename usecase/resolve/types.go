package resolve

import (
	"time"

	"github.com/hostwire/hostwire/domain"
	"github.com/hostwire/hostwire/domain/model"
)

// Repos bundles repository dependencies used by resolve use cases.
type Repos struct {
	Provider domain.ProviderRepository
	Run      domain.RunRepository
}

// Conventions carries resource-naming conventions for a resolution run.
// They are passed in explicitly so the resolver stays reusable across
// environments instead of baking in fixed tag keys.
type Conventions struct {
	ClusterTagKey string // load balancer tag key carrying the cluster name
	StackTagKey   string // load balancer tag key carrying the ingress stack
	RecordTTL     uint32 // TTL for emitted DNS records, seconds
}

// DefaultConventions returns the conventions used when none are configured.
func DefaultConventions() Conventions {
	return Conventions{
		ClusterTagKey: "elbv2.cluster",
		StackTagKey:   "ingress.stack",
		RecordTTL:     300,
	}
}

// UseCase provides application logic for resolution runs.
type UseCase struct {
	Repos       *Repos
	CloudPort   model.CloudPort
	Conventions Conventions

	// Provider is the provider aggregate the CloudPort was built from.
	// Runs recorded in history link back to its persisted row.
	Provider *model.Provider
}

// Input holds parameters for one resolution run.
type Input struct {
	State *model.DesiredState `json:"state"` // required: desired endpoint configuration

	// DryRun executes only read-only steps and reports mutations as planned.
	DryRun bool `json:"dry_run,omitempty"`

	// ValidationTimeout bounds WaitForValidation. Zero means the default.
	ValidationTimeout time.Duration `json:"validation_timeout,omitempty"`
}

// DefaultValidationTimeout bounds certificate validation waits when the
// caller does not supply a timeout.
const DefaultValidationTimeout = 5 * time.Minute

// StepResult describes the result of one plan step.
type StepResult struct {
	Kind    model.StepKind `json:"kind"`
	Target  string         `json:"target,omitempty"`
	Action  string         `json:"action"` // "created", "ok", "skipped", "planned", "failed", "timeout"
	Message string         `json:"message,omitempty"`
}

// Output holds the result of one resolution run.
type Output struct {
	Outcome      model.ResolveOutcome `json:"outcome"`
	Outputs      model.OutputSet      `json:"outputs"`
	Plan         model.Plan           `json:"plan"`
	Steps        []StepResult         `json:"steps,omitempty"`
	ConfigErrors []*model.ConfigError `json:"config_errors,omitempty"`
}
