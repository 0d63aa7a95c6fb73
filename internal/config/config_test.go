package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("expected exists=false for missing file")
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if cfg.Filter.PrefixMultiplier != defaultPrefixMultiplier {
		t.Errorf("PrefixMultiplier = %d, want %d", cfg.Filter.PrefixMultiplier, defaultPrefixMultiplier)
	}
	if len(cfg.Dictionaries) == 0 {
		t.Error("expected default dictionaries")
	}
}

func TestLoadParsesDictionariesInOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + dir + `"

[[dictionary]]
name = "passwords"
max_tokens = 100

[[dictionary]]
name = "surnames"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}

	names := cfg.DictionaryNames()
	if len(names) != 2 || names[0] != "passwords" || names[1] != "surnames" {
		t.Errorf("names = %v, want [passwords surnames]", names)
	}
	caps := cfg.Capacities()
	if caps["passwords"] != 100 || caps["surnames"] != 0 {
		t.Errorf("capacities = %v", caps)
	}
	if cfg.Paths.DataDir != dir {
		t.Errorf("DataDir = %q, want %q", cfg.Paths.DataDir, dir)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{
			name:    "bad output format",
			mutate:  func(c *Config) { c.Output.Format = "yaml" },
			wantSub: "output.format",
		},
		{
			name:    "zero multiplier",
			mutate:  func(c *Config) { c.Filter.PrefixMultiplier = 0 },
			wantSub: "prefix_multiplier",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantSub: "logging.level",
		},
		{
			name:    "no dictionaries",
			mutate:  func(c *Config) { c.Dictionaries = nil },
			wantSub: "dictionary",
		},
		{
			name: "duplicate dictionary",
			mutate: func(c *Config) {
				c.Dictionaries = []Dictionary{{Name: "names"}, {Name: "names"}}
			},
			wantSub: "twice",
		},
		{
			name: "negative capacity",
			mutate: func(c *Config) {
				c.Dictionaries = []Dictionary{{Name: "names", MaxTokens: -1}}
			},
			wantSub: "max_tokens",
		},
		{
			name: "path separator in name",
			mutate: func(c *Config) {
				c.Dictionaries = []Dictionary{{Name: "../names"}}
			},
			wantSub: "path separator",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatal(err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if len(cfg.Dictionaries) != 6 {
		t.Errorf("got %d dictionaries, want 6", len(cfg.Dictionaries))
	}
}
