package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bender/internal/config"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = []string{"--config", configPath}
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeTestConfig persists a document whose paths all live inside base so
// validation probes never touch real system locations.
func writeTestConfig(t *testing.T, base string) (string, config.Config) {
	t.Helper()
	path := filepath.Join(base, "config.toml")
	cfg := config.Default()
	cfg.Paths.Config = path
	cfg.Paths.Private = filepath.Join(base, "private")
	cfg.Paths.Upload = filepath.Join(base, "upload")
	cfg.Paths.Log = filepath.Join(base, "logs")

	data, err := cfg.Serialize()
	if err != nil {
		t.Fatalf("serialize test config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
	return path, cfg
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
