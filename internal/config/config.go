package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the directories and files the farm reads and writes.
type Paths struct {
	Config  string `toml:"config"`
	Private string `toml:"private"`
	Upload  string `toml:"upload"`
	Log     string `toml:"log"`
}

// Queue contains the message-broker connection settings shared by all
// services that publish or consume render tasks.
type Queue struct {
	URL            string `toml:"url"`
	Exchange       string `toml:"exchange"`
	TaskRoutingKey string `toml:"task_routing_key"`
}

// Server contains upload and HTTP framework tuning for the intake service.
type Server struct {
	Port             uint   `toml:"port"`
	MaxUploadMiB     uint64 `toml:"max_upload_mib"`
	KeepAliveSeconds uint   `toml:"keep_alive_seconds"`
	Workers          uint   `toml:"workers"`
}

// Janitor contains the cleanup policy for finished and abandoned jobs.
type Janitor struct {
	IntervalSeconds    uint `toml:"interval_seconds"`
	KeepFinishedHours  uint `toml:"keep_finished_hours"`
	KeepErroredHours   uint `toml:"keep_errored_hours"`
	OrphanGraceMinutes uint `toml:"orphan_grace_minutes"`
}

// Worker contains per-render-worker tuning.
//
// ID identifies one worker instance on the farm. It is regenerated whenever
// the section is rebuilt from defaults or by the wizard; it is never carried
// over from an earlier document.
type Worker struct {
	ID                 string `toml:"id"`
	ParallelTasks      uint   `toml:"parallel_tasks"`
	HeartbeatSeconds   uint   `toml:"heartbeat_seconds"`
	GracePeriodSeconds int64  `toml:"grace_period_seconds"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for Bender.
//
// Configuration sections by subsystem:
//   - Paths: config file location, private data, upload intake, logs
//   - Queue: message-broker connection for task dispatch
//   - Server: upload limits and HTTP framework tuning
//   - Janitor: retention and cleanup timing
//   - Worker: render-worker identity and tuning
//   - Logging: log format and level
type Config struct {
	ServerName string  `toml:"server_name"`
	Paths      Paths   `toml:"paths"`
	Queue      Queue   `toml:"queue"`
	Server     Server  `toml:"server"`
	Janitor    Janitor `toml:"janitor"`
	Worker     Worker  `toml:"worker"`
	Logging    Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigLocation)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.Paths.Config = resolvedPath

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigLocation)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("bender.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates required directories for farm operation.
// UploadDir is created on a best-effort basis so the CLI stays usable when
// external storage is temporarily unavailable.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.Private, c.Paths.Log} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if strings.TrimSpace(c.Paths.Upload) != "" {
		// Best-effort to avoid failing config load when storage is offline.
		_ = os.MkdirAll(c.Paths.Upload, 0o755)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
