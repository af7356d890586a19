package hostwireenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variable names
const (
	HostwireRootEnvKey = "HOSTWIRE_ROOT"
	HostwireDirEnvKey  = "HOSTWIRE_DIR"
)

// Directory and file names
const (
	HostwireDirName = ".hostwire"
	ConfigFileName  = "config.yml"
)

// Env holds the resolved HOSTWIRE_ROOT, HOSTWIRE_DIR, and loaded
// .hostwire/config.yml contents. It represents the project environment and
// provides utilities for path expansion.
type Env struct {
	HostwireRoot string  // Resolved HOSTWIRE_ROOT (project directory)
	HostwireDir  string  // Resolved HOSTWIRE_DIR (typically .hostwire)
	Version      int     // .hostwire/config.yml version
	Store        Store   // .hostwire/config.yml store configuration
	Logging      Logging // .hostwire/config.yml logging configuration
}

// Store represents the run-store configuration from .hostwire/config.yml
type Store struct {
	URL string `yaml:"url,omitempty"` // db-url default (file:... | sqlite:...)
}

// Logging represents the logging configuration from .hostwire/config.yml
type Logging struct {
	Dir           string `yaml:"dir,omitempty"`           // Log directory (default: $HOSTWIRE_DIR/logs)
	Format        string `yaml:"format,omitempty"`        // Log format: json (default), human
	Level         string `yaml:"level,omitempty"`         // Log level: DEBUG, INFO (default), WARN, ERROR
	RetentionDays int    `yaml:"retentionDays,omitempty"` // Days to retain log files (default: 7)
}

// configFile represents the structure of .hostwire/config.yml for unmarshaling
type configFile struct {
	Version int     `yaml:"version"`
	Store   Store   `yaml:"store,omitempty"`
	Logging Logging `yaml:"logging,omitempty"`
}

// Resolve discovers HOSTWIRE_ROOT and HOSTWIRE_DIR, then loads .hostwire/config.yml.
//
// Resolution order for HOSTWIRE_ROOT:
//  1. hostwireRoot parameter (from --hostwire-root flag or HOSTWIRE_ROOT env)
//  2. Upward search from workDir for a parent containing .hostwire/
//
// Resolution order for HOSTWIRE_DIR:
//  1. hostwireDir parameter (from --hostwire-dir flag or HOSTWIRE_DIR env)
//  2. Default: $HOSTWIRE_ROOT/.hostwire
//
// Parameters can be empty strings to trigger discovery/defaults.
func Resolve(hostwireRoot, hostwireDir, workDir string) (*Env, error) {
	if hostwireRoot == "" {
		found, err := searchForRoot(workDir)
		if err != nil {
			return nil, fmt.Errorf("searching for %s directory: %w", HostwireDirName, err)
		}
		if found == "" {
			return nil, fmt.Errorf("HOSTWIRE_ROOT not specified and %s directory not found in ancestors of %q", HostwireDirName, workDir)
		}
		hostwireRoot = found
	}

	var err error
	hostwireRoot, err = filepath.Abs(hostwireRoot)
	if err != nil {
		return nil, fmt.Errorf("resolving HOSTWIRE_ROOT to absolute path: %w", err)
	}
	hostwireRoot = filepath.Clean(hostwireRoot)

	info, err := os.Stat(hostwireRoot)
	if err != nil {
		return nil, fmt.Errorf("HOSTWIRE_ROOT %q does not exist: %w", hostwireRoot, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("HOSTWIRE_ROOT %q is not a directory", hostwireRoot)
	}

	if hostwireDir == "" {
		hostwireDir = filepath.Join(hostwireRoot, HostwireDirName)
	}

	hostwireDir, err = filepath.Abs(hostwireDir)
	if err != nil {
		return nil, fmt.Errorf("resolving HOSTWIRE_DIR to absolute path: %w", err)
	}
	hostwireDir = filepath.Clean(hostwireDir)

	info, err = os.Stat(hostwireDir)
	if err != nil {
		return nil, fmt.Errorf("HOSTWIRE_DIR %q does not exist: %w", hostwireDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("HOSTWIRE_DIR %q is not a directory", hostwireDir)
	}

	cfg := &Env{
		HostwireRoot: hostwireRoot,
		HostwireDir:  hostwireDir,
	}

	if err := cfg.loadConfigFile(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// searchForRoot searches upward from startDir for a parent containing the
// .hostwire directory. Returns the parent directory (not .hostwire itself)
// or empty string if not found.
func searchForRoot(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	current := absDir
	for {
		candidate := filepath.Join(current, HostwireDirName)
		info, err := os.Stat(candidate)
		if err == nil && info.IsDir() {
			return current, nil
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root without finding .hostwire
			return "", nil
		}
		current = parent
	}
}

// loadConfigFile loads .hostwire/config.yml into the Env.
// Does nothing if the file doesn't exist (not an error).
func (e *Env) loadConfigFile() error {
	configPath := filepath.Join(e.HostwireDir, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("reading config file %q: %w", configPath, err)
	}

	var cf configFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return fmt.Errorf("parsing config file %q: %w", configPath, err)
	}

	e.Version = cf.Version
	e.Store = cf.Store
	e.Logging = cf.Logging

	return nil
}

// ExpandVars replaces $HOSTWIRE_ROOT and $HOSTWIRE_DIR in the given string.
func (e *Env) ExpandVars(s string) string {
	s = strings.ReplaceAll(s, "$HOSTWIRE_ROOT", e.HostwireRoot)
	s = strings.ReplaceAll(s, "$HOSTWIRE_DIR", e.HostwireDir)
	return s
}

// LogDir returns the effective log directory for this environment.
func (e *Env) LogDir() string {
	if e.Logging.Dir != "" {
		return e.ExpandVars(e.Logging.Dir)
	}
	return filepath.Join(e.HostwireDir, "logs")
}

// InitialConfigYAML generates the initial .hostwire/config.yml content as YAML bytes.
// The generated YAML has proper field ordering and 2-space indentation.
func InitialConfigYAML() ([]byte, error) {
	defaultConfig := configFile{
		Version: 1,
		Store: Store{
			URL: "file:hostwireops.yml",
		},
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&defaultConfig); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("closing yaml encoder: %w", err)
	}

	return []byte(buf.String()), nil
}
