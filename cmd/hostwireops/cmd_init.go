package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hostwire/hostwire/config/hostwireenv"
	"github.com/spf13/cobra"
)

func newCmdInit() *cobra.Command {
	var forceFlag bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the Hostwire CLI environment",
		Long: `Initialize the Hostwire CLI environment by creating the .hostwire/
directory structure and config.yml.

The init command creates:
  - .hostwire/ directory
  - .hostwire/config.yml with default configuration
  - .hostwire/logs/ directory`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, forceFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing .hostwire/config.yml")
	return cmd
}

func runInit(cmd *cobra.Command, forceFlag bool) error {
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	dir := filepath.Join(workDir, hostwireenv.HostwireDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0755); err != nil {
		return fmt.Errorf("creating logs directory: %w", err)
	}

	configPath := filepath.Join(dir, hostwireenv.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil && !forceFlag {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	data, err := hostwireenv.InitialConfigYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "initialized %s\n", dir)
	return nil
}
