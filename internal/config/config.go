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

// Paths contains directory and file location configuration.
type Paths struct {
	DataDir    string `toml:"data_dir"`
	OutputFile string `toml:"output_file"`
	LogDir     string `toml:"log_dir"`
	CountDB    string `toml:"count_db"`
}

// Output selects the artifact format written by the build command.
type Output struct {
	Format string `toml:"format"`
}

// Filter contains the exclusion-rule thresholds. These were historically
// hard-coded; they are configurable so the tuning can be tested and adjusted
// independently of the algorithm.
type Filter struct {
	// MinTokenLength drops tokens shorter than this at load time.
	MinTokenLength int `toml:"min_token_length"`
	// MinGuessesBeforeGrowing is the rank below which a token is immune to
	// the brute-force-dominance filter.
	MinGuessesBeforeGrowing int `toml:"min_guesses_before_growing"`
	// PrefixMultiplier bounds the cost of a one-character prefix extension.
	PrefixMultiplier int `toml:"prefix_multiplier"`
	// MinPrefixLength is the shortest token the dominance filter considers.
	MinPrefixLength int `toml:"min_prefix_length"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Dictionary configures one source frequency list. MaxTokens of zero means
// the list is unbounded.
type Dictionary struct {
	Name      string `toml:"name"`
	MaxTokens int    `toml:"max_tokens"`
}

// Config encapsulates all configuration values for rankdict.
type Config struct {
	Paths        Paths        `toml:"paths"`
	Output       Output       `toml:"output"`
	Filter       Filter       `toml:"filter"`
	Logging      Logging      `toml:"logging"`
	Dictionaries []Dictionary `toml:"dictionary"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/rankdict/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. When the file does not
// exist, defaults are used and exists is false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()
	// Decode into an empty dictionary slice so file entries replace the
	// defaults instead of accumulating alongside them.
	defaultDictionaries := cfg.Dictionaries
	cfg.Dictionaries = nil

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

	if len(cfg.Dictionaries) == 0 {
		cfg.Dictionaries = defaultDictionaries
	}

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

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("rankdict.toml")
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

// EnsureDirectories creates the directories rankdict writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.DataDir, c.Paths.LogDir}
	if c.Paths.OutputFile != "" {
		dirs = append(dirs, filepath.Dir(c.Paths.OutputFile))
	}
	if c.Paths.CountDB != "" {
		dirs = append(dirs, filepath.Dir(c.Paths.CountDB))
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// DictionaryNames returns the configured list names in priority order.
func (c *Config) DictionaryNames() []string {
	names := make([]string, len(c.Dictionaries))
	for i, d := range c.Dictionaries {
		names[i] = d.Name
	}
	return names
}

// Capacities returns the per-list token caps keyed by list name. Entries with
// value zero are unbounded.
func (c *Config) Capacities() map[string]int {
	caps := make(map[string]int, len(c.Dictionaries))
	for _, d := range c.Dictionaries {
		caps[d.Name] = d.MaxTokens
	}
	return caps
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
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
