// Package serialize writes the consolidated dictionary artifact.
//
// The coffee format is the estimator's native lookup table: each list is a
// comma-joined string split client-side, which is why the consolidation
// engine guarantees no token contains a comma or double quote. The JSON
// format carries the same data for consumers that want structure. Both
// formats list dictionaries in configured order and are written atomically.
package serialize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"rankdict/internal/fileutil"
)

// ErrUnsafeToken indicates a token that cannot be represented in the
// comma-joined artifact. The engine's exclusion rules make this unreachable;
// hitting it means a list bypassed consolidation.
var ErrUnsafeToken = errors.New("token contains comma or double quote")

// Write renders the lists in the given format and atomically writes the
// artifact to path. Names fixes the output order; names with no entry in
// lists are skipped.
func Write(path, format string, names []string, lists map[string][]string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "coffee":
		data, err = Coffee(names, lists)
	case "json":
		data, err = JSON(names, lists)
	default:
		err = fmt.Errorf("output format: unsupported value %q", format)
	}
	if err != nil {
		return err
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}

// Coffee renders the CoffeeScript module consumed by the estimator.
func Coffee(names []string, lists map[string][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# generated by rankdict\n")
	buf.WriteString("frequency_lists = \n  ")

	entries := make([]string, 0, len(names))
	for _, name := range names {
		tokens, ok := lists[name]
		if !ok {
			continue
		}
		if err := checkSafe(name, tokens); err != nil {
			return nil, err
		}
		entries = append(entries, fmt.Sprintf("%s: \"%s\".split(\",\")", name, strings.Join(tokens, ",")))
	}
	buf.WriteString(strings.Join(entries, "\n  "))
	buf.WriteString("\n")
	buf.WriteString("module.exports = frequency_lists\n")
	return buf.Bytes(), nil
}

// JSON renders a name → token array object, preserving configured order.
func JSON(names []string, lists map[string][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	first := true
	for _, name := range names {
		tokens, ok := lists[name]
		if !ok {
			continue
		}
		if err := checkSafe(name, tokens); err != nil {
			return nil, err
		}
		if !first {
			buf.WriteString(",\n")
		}
		first = false
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(tokens)
		if err != nil {
			return nil, err
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
	}
	buf.WriteString("\n}\n")
	return buf.Bytes(), nil
}

func checkSafe(name string, tokens []string) error {
	for _, token := range tokens {
		if strings.ContainsAny(token, `,"`) {
			return fmt.Errorf("%w: %q in list %s", ErrUnsafeToken, token, name)
		}
	}
	return nil
}
