package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newCmdPlan() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:                "plan",
		Short:              "Print the ordered resolution plan without executing it",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, state, err := buildResolveUseCase(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			out, err := uc.Plan(ctx, state)
			if err != nil {
				return fmt.Errorf("failed to plan: %w", err)
			}

			w := cmd.OutOrStdout()
			if len(out.ConfigErrors) > 0 {
				for _, ce := range out.ConfigErrors {
					fmt.Fprintf(w, "error: %s\n", ce.Error())
				}
				return fmt.Errorf("configuration is invalid")
			}
			if len(out.Plan.Steps) == 0 {
				fmt.Fprintf(w, "nothing to do (outcome: %s)\n", out.Outcome)
				return nil
			}
			for i, s := range out.Plan.Steps {
				if s.Target != "" {
					fmt.Fprintf(w, "%d. %s %s\n", i+1, s.Kind, s.Target)
				} else {
					fmt.Fprintf(w, "%d. %s\n", i+1, s.Kind)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "hostwireops.yml", "Path to hostwireops.yml (when db-url is not file-backed)")
	return cmd
}
