package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hostwire/hostwire/config/hostwireenv"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	origWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origWD); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestRootCmdProjectEnvironment(t *testing.T) {
	tmpDir := t.TempDir()
	hostwireDir := filepath.Join(tmpDir, hostwireenv.HostwireDirName)
	logsDir := filepath.Join(hostwireDir, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		t.Fatalf("creating project directories: %v", err)
	}

	configYAML := "version: 1\n" +
		"store:\n" +
		"  url: sqlite:$HOSTWIRE_DIR/runs.db\n" +
		"logging:\n" +
		"  format: json\n" +
		"  level: DEBUG\n" +
		"  retentionDays: 1\n"
	if err := os.WriteFile(filepath.Join(hostwireDir, hostwireenv.ConfigFileName), []byte(configYAML), 0644); err != nil {
		t.Fatalf("writing project config: %v", err)
	}

	// A stale log past the retention window must be pruned on startup.
	staleLog := filepath.Join(logsDir, "hostwireops-20240101-000000-000.log")
	if err := os.WriteFile(staleLog, []byte("old\n"), 0644); err != nil {
		t.Fatalf("writing stale log: %v", err)
	}
	old := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(staleLog, old, old); err != nil {
		t.Fatalf("aging stale log: %v", err)
	}

	chdir(t, tmpDir)
	t.Setenv("HOSTWIRE_ROOT", "")
	t.Setenv("HOSTWIRE_DIR", "")
	t.Setenv("HOSTWIRE_DB_URL", "")
	t.Setenv("HOSTWIRE_LOG_FORMAT", "")
	t.Cleanup(func() {
		if logFile != nil {
			logFile.Close()
			logFile = nil
		}
	})

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version"})
	root.SetContext(context.Background())
	if _, err := root.ExecuteC(); err != nil {
		t.Fatalf("ExecuteC() error = %v", err)
	}

	dbURL := root.PersistentFlags().Lookup("db-url").Value.String()
	if !strings.HasPrefix(dbURL, "sqlite:") || !strings.HasSuffix(dbURL, "runs.db") {
		t.Errorf("db-url = %q, want project store URL with $HOSTWIRE_DIR expanded", dbURL)
	}
	if strings.Contains(dbURL, "$HOSTWIRE_DIR") {
		t.Errorf("db-url = %q, variable not expanded", dbURL)
	}

	entries, err := os.ReadDir(logsDir)
	if err != nil {
		t.Fatalf("reading logs directory: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if len(names) != 1 {
		t.Fatalf("log files = %v, want the stale one pruned and one new file", names)
	}
	if names[0] == filepath.Base(staleLog) {
		t.Errorf("stale log %s survived retention cleanup", names[0])
	}
	if !strings.HasPrefix(names[0], "hostwireops-") || !strings.HasSuffix(names[0], ".log") {
		t.Errorf("log file %s does not match the hostwireops-*.log pattern", names[0])
	}
}

func TestRunLatestCommandEmptyHistory(t *testing.T) {
	tmpDir := t.TempDir()
	configYAML := `version: v1
provider:
  name: aws-main
  driver: route53
  settings:
    AWS_REGION: us-east-1
endpoint:
  enabled: true
  dnsProvider: route53
  zoneName: example.com
  hostname: app.example.com
ingress:
  clusterName: prod
  stackTag: ingress-nginx
`
	if err := os.WriteFile(filepath.Join(tmpDir, "hostwireops.yml"), []byte(configYAML), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	chdir(t, tmpDir)
	t.Setenv("HOSTWIRE_ROOT", "")
	t.Setenv("HOSTWIRE_DIR", "")
	t.Setenv("HOSTWIRE_DB_URL", "")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"run", "latest"})
	root.SetContext(context.Background())
	_, err := root.ExecuteC()
	if err == nil {
		t.Fatal("run latest on empty history: error = nil, want not found")
	}
	if !strings.Contains(err.Error(), "failed to get latest run") {
		t.Errorf("error = %q, want latest-run failure", err.Error())
	}
}
