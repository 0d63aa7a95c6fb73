package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	configPath string
	dataDir    string
	outputFile string
	countDB    string
}

// setupCLITestEnv writes a self-contained config pointing every path at a
// temp directory.
func setupCLITestEnv(t *testing.T, dictionaries string) cliTestEnv {
	t.Helper()
	root := t.TempDir()

	env := cliTestEnv{
		configPath: filepath.Join(root, "config.toml"),
		dataDir:    filepath.Join(root, "data"),
		outputFile: filepath.Join(root, "out", "frequency_lists.coffee"),
		countDB:    filepath.Join(root, "counts.db"),
	}
	content := `
[paths]
data_dir = "` + env.dataDir + `"
output_file = "` + env.outputFile + `"
log_dir = "` + filepath.Join(root, "logs") + `"
count_db = "` + env.countDB + `"

[logging]
level = "error"
` + dictionaries
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(env.dataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return env
}

func runCLI(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("output %q missing %q", output, want)
	}
}
