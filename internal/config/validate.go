package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateFilter(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateDictionaries()
}

func (c *Config) validateOutput() error {
	switch c.Output.Format {
	case "coffee", "json":
		return nil
	default:
		return fmt.Errorf("output.format: unsupported value %q (expected coffee or json)", c.Output.Format)
	}
}

func (c *Config) validateFilter() error {
	return ensurePositiveMap(map[string]int{
		"filter.min_token_length":           c.Filter.MinTokenLength,
		"filter.min_guesses_before_growing": c.Filter.MinGuessesBeforeGrowing,
		"filter.prefix_multiplier":          c.Filter.PrefixMultiplier,
		"filter.min_prefix_length":          c.Filter.MinPrefixLength,
	})
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func (c *Config) validateDictionaries() error {
	if len(c.Dictionaries) == 0 {
		return errors.New("at least one [[dictionary]] entry must be configured")
	}
	seen := make(map[string]bool, len(c.Dictionaries))
	for _, d := range c.Dictionaries {
		if d.Name == "" {
			return errors.New("dictionary.name must be set")
		}
		if strings.ContainsAny(d.Name, `/\`) {
			return fmt.Errorf("dictionary.name %q must not contain path separators", d.Name)
		}
		if seen[d.Name] {
			return fmt.Errorf("dictionary %q configured twice", d.Name)
		}
		seen[d.Name] = true
		if d.MaxTokens < 0 {
			return fmt.Errorf("dictionary %q: max_tokens must not be negative", d.Name)
		}
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
