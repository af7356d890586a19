package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hostwire/hostwire/domain/model"
	"github.com/hostwire/hostwire/internal/logging"
	"github.com/hostwire/hostwire/usecase/resolve"
	"github.com/spf13/cobra"
)

func newCmdResolve() *cobra.Command {
	var file string
	var dryRun bool
	var validationTimeout time.Duration

	cmd := &cobra.Command{
		Use:                "resolve",
		Short:              "Resolve the endpoint: zone, certificate, load balancer and DNS record",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			uc, state, err := buildResolveUseCase(cmd)
			if err != nil {
				return err
			}

			timeout := validationTimeout + 5*time.Minute
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			ctx, cleanup := withCmdRunLogger(ctx, "resolve", state.Hostname)
			defer func() { cleanup(err) }()
			logger := logging.FromContext(ctx)

			logger.Info(ctx, "resolve start",
				"hostname", state.Hostname, "dns_provider", state.DNSProvider, "dry_run", dryRun)

			out, err := uc.Resolve(ctx, &resolve.Input{
				State:             state,
				DryRun:            dryRun,
				ValidationTimeout: validationTimeout,
			})
			if err != nil {
				return fmt.Errorf("failed to resolve: %w", err)
			}

			for _, s := range out.Steps {
				switch s.Action {
				case "failed":
					logger.Error(ctx, "step failed", "step", s.Kind, "target", s.Target, "error", s.Message)
				case "skipped":
					logger.Warn(ctx, "step skipped", "step", s.Kind, "target", s.Target, "message", s.Message)
				default:
					logger.Info(ctx, "step "+s.Action, "step", s.Kind, "target", s.Target, "message", s.Message)
				}
			}

			for _, ce := range out.ConfigErrors {
				logger.Error(ctx, "configuration error", "kind", ce.Kind, "message", ce.Message)
			}

			return printOutcome(cmd, out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "hostwireops.yml", "Path to hostwireops.yml (when db-url is not file-backed)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be changed without applying")
	cmd.Flags().DurationVar(&validationTimeout, "validation-timeout", resolve.DefaultValidationTimeout, "How long to wait for certificate validation")

	return cmd
}

// printOutcome writes the outcome and outputs as JSON to stdout.
func printOutcome(cmd *cobra.Command, out *resolve.Output) error {
	type result struct {
		Outcome      model.ResolveOutcome `json:"outcome"`
		Outputs      model.OutputSet      `json:"outputs"`
		ConfigErrors []*model.ConfigError `json:"config_errors,omitempty"`
	}
	b, err := json.MarshalIndent(result{Outcome: out.Outcome, Outputs: out.Outputs, ConfigErrors: out.ConfigErrors}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
