package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	_ "github.com/hostwire/hostwire/adapters/drivers/cloud/external"
	_ "github.com/hostwire/hostwire/adapters/drivers/cloud/route53"
	"github.com/hostwire/hostwire/config/hostwireenv"
	"github.com/hostwire/hostwire/internal/logging"
	"github.com/spf13/cobra"
)

// logFile is the per-invocation log file opened when running inside a
// .hostwire project; closed after command execution.
var logFile *logging.LogFile

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "hostwireops",
		Short:   "HostwireOps CLI",
		Long:    "HostwireOps CLI",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add global db-url flag
	defaultDB := os.Getenv("HOSTWIRE_DB_URL")
	if defaultDB == "" {
		defaultDB = "file:hostwireops.yml"
	}
	cmd.PersistentFlags().String("db-url", defaultDB, "Database URL (env HOSTWIRE_DB_URL) (file:/path/to/hostwireops.yml | sqlite:/path/to.db)")

	// global flags (db-url already exists)
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env HOSTWIRE_LOG_FORMAT)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		level := slog.LevelInfo
		w := io.Writer(os.Stderr)

		// A .hostwire project supplies defaults for the store URL, log
		// format and level, and a per-invocation log file with retention.
		if env := resolveEnv(); env != nil {
			if !c.Flags().Changed("log-format") && env.Logging.Format != "" {
				format = env.Logging.Format
			}
			level = logging.ParseLevel(env.Logging.Level)
			if f := c.Flags().Lookup("db-url"); f != nil && !f.Changed && os.Getenv("HOSTWIRE_DB_URL") == "" && env.Store.URL != "" {
				_ = f.Value.Set(env.ExpandVars(env.Store.URL))
			}
			if lf := openLogFile(env); lf != nil {
				logFile = lf
				w = io.MultiWriter(os.Stderr, lf.Writer())
			}
		}
		if env := os.Getenv("HOSTWIRE_LOG_FORMAT"); env != "" { // env overrides flag and project config
			format = env
		}
		l, err := logging.NewWithWriter(format, level, w)
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	// Add subcommands
	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdInit())
	cmd.AddCommand(newCmdConfig())
	cmd.AddCommand(newCmdResolve())
	cmd.AddCommand(newCmdPlan())
	cmd.AddCommand(newCmdRun())
	return cmd
}

// resolveEnv discovers the enclosing .hostwire project environment.
// Returns nil when the command runs outside an initialized project.
func resolveEnv() *hostwireenv.Env {
	wd, err := os.Getwd()
	if err != nil {
		return nil
	}
	env, err := hostwireenv.Resolve(os.Getenv(hostwireenv.HostwireRootEnvKey), os.Getenv(hostwireenv.HostwireDirEnvKey), wd)
	if err != nil {
		return nil
	}
	return env
}

// openLogFile creates the per-invocation log file in the project's log
// directory and prunes entries past the retention window, best effort.
func openLogFile(env *hostwireenv.Env) *logging.LogFile {
	dir := env.LogDir()
	retention := env.Logging.RetentionDays
	if retention == 0 {
		retention = 7
	}
	_ = logging.CleanupOldLogFiles(dir, retention)
	lf, err := logging.NewLogFile(&logging.LogConfig{Dir: dir, RetentionDays: retention})
	if err != nil {
		return nil
	}
	return lf
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if logFile != nil {
		_ = logFile.Close()
	}
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
