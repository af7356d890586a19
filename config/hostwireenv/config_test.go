package hostwireenv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDiscoversRootUpward(t *testing.T) {
	tmpDir := t.TempDir()

	projectDir := filepath.Join(tmpDir, "project")
	deepDir := filepath.Join(projectDir, "subdir", "deep")
	if err := os.MkdirAll(deepDir, 0755); err != nil {
		t.Fatalf("creating directories: %v", err)
	}
	if err := os.Mkdir(filepath.Join(projectDir, HostwireDirName), 0755); err != nil {
		t.Fatalf("creating %s directory: %v", HostwireDirName, err)
	}

	env, err := Resolve("", "", deepDir)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if env.HostwireRoot != projectDir {
		t.Errorf("HostwireRoot = %q, want %q", env.HostwireRoot, projectDir)
	}
	if env.HostwireDir != filepath.Join(projectDir, HostwireDirName) {
		t.Errorf("HostwireDir = %q", env.HostwireDir)
	}
}

func TestResolveNotFound(t *testing.T) {
	if _, err := Resolve("", "", t.TempDir()); err == nil {
		t.Fatalf("Resolve() error = nil, want discovery failure")
	}
}

func TestResolveLoadsConfigFile(t *testing.T) {
	projectDir := t.TempDir()
	dir := filepath.Join(projectDir, HostwireDirName)
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}

	content := "version: 1\nstore:\n  url: sqlite:./runs.db\nlogging:\n  format: json\n  dir: $HOSTWIRE_DIR/custom-logs\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	env, err := Resolve(projectDir, "", projectDir)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if env.Version != 1 {
		t.Errorf("Version = %d, want 1", env.Version)
	}
	if env.Store.URL != "sqlite:./runs.db" {
		t.Errorf("Store.URL = %q", env.Store.URL)
	}
	if env.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q", env.Logging.Format)
	}
	want := filepath.Join(env.HostwireDir, "custom-logs")
	if env.LogDir() != want {
		t.Errorf("LogDir() = %q, want %q", env.LogDir(), want)
	}
}

func TestLogDirDefault(t *testing.T) {
	env := &Env{HostwireDir: "/tmp/p/.hostwire"}
	if env.LogDir() != filepath.Join("/tmp/p/.hostwire", "logs") {
		t.Errorf("LogDir() = %q", env.LogDir())
	}
}

func TestInitialConfigYAML(t *testing.T) {
	data, err := InitialConfigYAML()
	if err != nil {
		t.Fatalf("InitialConfigYAML() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("InitialConfigYAML() returned empty content")
	}
}
