package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rankdict/internal/consolidate"
)

const twoListConfig = `
[[dictionary]]
name = "names"

[[dictionary]]
name = "words"
`

func TestBuildEndToEnd(t *testing.T) {
	env := setupCLITestEnv(t, twoListConfig)
	writeDataFile(t, env.dataDir, "names.txt", "ann 9000\nbob 8000\n")
	writeDataFile(t, env.dataDir, "words.txt", "bob 7000\ncat 6000\n")

	_, err := runCLI(t, env.configPath, "build")
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	artifact, err := os.ReadFile(env.outputFile)
	if err != nil {
		t.Fatal(err)
	}
	content := string(artifact)
	// bob ranks 1 in words and 2 in names, so words owns it.
	requireContains(t, content, `names: "ann".split(",")`)
	requireContains(t, content, `words: "bob,cat".split(",")`)
}

func TestBuildJSONFormat(t *testing.T) {
	env := setupCLITestEnv(t, twoListConfig)
	writeDataFile(t, env.dataDir, "words.txt", "cat\n")

	target := filepath.Join(t.TempDir(), "lists.json")
	_, err := runCLI(t, env.configPath, "build", "--format", "json", "--output", target)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	artifact, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	requireContains(t, string(artifact), `"words": ["cat"]`)
}

func TestBuildDuplicateTokenAborts(t *testing.T) {
	env := setupCLITestEnv(t, twoListConfig)
	writeDataFile(t, env.dataDir, "names.txt", "ann\nbob\nann\n")

	_, err := runCLI(t, env.configPath, "build")
	if err == nil {
		t.Fatal("expected build to fail on duplicate token")
	}
	if !strings.Contains(err.Error(), "duplicate token") {
		t.Errorf("error %q does not mention duplicate token", err)
	}
	if _, statErr := os.Stat(env.outputFile); !os.IsNotExist(statErr) {
		t.Error("artifact should not be written on failure")
	}
}

func TestBuildRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t, twoListConfig)

	_, err := runCLI(t, env.configPath, "build", "--format", "yaml")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestWriteBuildSummaryPlain(t *testing.T) {
	var buf bytes.Buffer
	stats := []consolidate.ListStats{
		{Name: "names", Loaded: 10, Owned: 8, Dominated: 1, Kept: 7, Capacity: 0},
		{Name: "words", Loaded: 20, Owned: 15, Dominated: 2, Kept: 13, Capacity: 13},
	}

	writeBuildSummary(&buf, stats, false)

	out := buf.String()
	requireContains(t, out, "names\tloaded=10\towned=8\tdominated=1\tkept=7\tcap=-")
	requireContains(t, out, "cap=13")
}

func TestWriteBuildSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	writeBuildSummary(&buf, []consolidate.ListStats{{Name: "names", Loaded: 1, Kept: 1}}, true)

	out := buf.String()
	requireContains(t, out, "Dictionary")
	requireContains(t, out, "names")
}

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
