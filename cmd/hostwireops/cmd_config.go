package main

import (
	"fmt"

	"github.com/hostwire/hostwire/config/hostwirecfg"
	"github.com/spf13/cobra"
)

func newCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "config",
		Short:              "Read and validate configuration",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE:               func(cmd *cobra.Command, args []string) error { return fmt.Errorf("invalid command") },
	}
	cmd.PersistentFlags().StringP("file", "f", "hostwireops.yml", "Path to hostwireops.yml")
	cmd.AddCommand(newCmdConfigValidate(), newCmdConfigShow())
	return cmd
}

func configPath(cmd *cobra.Command) string {
	if f := findFlag(cmd, "file"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return "hostwireops.yml"
}

func newCmdConfigValidate() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate hostwireops.yml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(cmd)
			cfg, err := hostwirecfg.Load(path)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", path)
			return nil
		},
	}
}

func newCmdConfigShow() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show a summary of the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := hostwirecfg.Load(configPath(cmd))
			if err != nil {
				return err
			}
			// Print a concise summary to stdout
			fmt.Fprintf(cmd.OutOrStdout(), "version=%s provider=%s driver=%s enabled=%t dnsProvider=%s hostname=%s cluster=%s\n",
				cfg.Version, cfg.Provider.Name, cfg.Provider.Driver,
				cfg.Endpoint.Enabled, cfg.Endpoint.DNSProvider, cfg.Endpoint.Hostname, cfg.Ingress.ClusterName)
			return nil
		},
	}
}
