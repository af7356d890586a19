package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hostwire/hostwire/domain/model"
	"github.com/spf13/cobra"
)

func newCmdRun() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "run",
		Short:              "Inspect resolution run history",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE:               func(cmd *cobra.Command, args []string) error { return fmt.Errorf("invalid command") },
	}
	cmd.AddCommand(newCmdRunList(), newCmdRunGet(), newCmdRunLatest())
	return cmd
}

func newCmdRunList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List resolution runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildRunUseCase(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			runs, err := uc.List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list runs: %w", err)
			}

			w := cmd.OutOrStdout()
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					r.ID, r.CreatedAt.Format(time.RFC3339), r.Hostname, r.Outcome, r.Error)
			}
			return nil
		},
	}
}

func newCmdRunGet() *cobra.Command {
	return &cobra.Command{
		Use:   "get <run-id>",
		Short: "Show one resolution run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildRunUseCase(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			r, err := uc.Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get run %s: %w", args[0], err)
			}
			printRun(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func newCmdRunLatest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the most recent resolution run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := buildRunUseCase(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			hostname, _ := cmd.Flags().GetString("hostname")
			r, err := uc.Latest(ctx, hostname)
			if err != nil {
				return fmt.Errorf("failed to get latest run: %w", err)
			}
			printRun(cmd.OutOrStdout(), r)
			return nil
		},
	}
	cmd.Flags().String("hostname", "", "Limit to runs for this hostname")
	return cmd
}

func printRun(w io.Writer, r *model.ResolutionRun) {
	fmt.Fprintf(w, "id=%s name=%s provider=%s created=%s\n", r.ID, r.Name, r.ProviderID, r.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "hostname=%s dnsProvider=%s outcome=%s\n", r.Hostname, r.DNSProvider, r.Outcome)
	fmt.Fprintf(w, "zoneId=%s certificateArn=%s loadBalancerDnsName=%s\n", r.ZoneID, r.CertificateARN, r.LoadBalancerDNSName)
	if r.Error != "" {
		fmt.Fprintf(w, "error=%s\n", r.Error)
	}
}
