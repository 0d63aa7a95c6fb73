package freqlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrDuplicateToken indicates the same token appeared twice within one source
// list. Ranks are line positions, so a duplicate would silently corrupt rank
// semantics; the run must abort instead.
var ErrDuplicateToken = errors.New("duplicate token in frequency list")

// scannerBufSize accommodates corpus files with very long lines.
const scannerBufSize = 4 * 1024 * 1024

// List is one source dictionary: a name plus its surviving token→rank pairs.
// Ranks are 1-based line positions in the source file and are only meaningful
// relative to other tokens of the same list.
type List struct {
	Name  string
	Ranks map[string]int
}

// Parse reads one frequency file into a List. The i-th line (1-based) yields
// rank i; the token is the first whitespace-delimited field and any further
// fields (typically a raw count) are ignored. Tokens failing the early
// exclusion rules are skipped; their rank slot is not reassigned, so rank
// always equals line position. Blank lines are skipped.
func Parse(name string, r io.Reader, rules Rules) (*List, error) {
	list := &List{Name: name, Ranks: make(map[string]int)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), scannerBufSize)

	rank := 0
	for scanner.Scan() {
		rank++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		token := fields[0]
		if rules.Exclude(token, rank) {
			continue
		}
		if prev, ok := list.Ranks[token]; ok {
			return nil, fmt.Errorf("%w: %q at ranks %d and %d in %s", ErrDuplicateToken, token, prev, rank, name)
		}
		list.Ranks[token] = rank
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return list, nil
}

// LoadDir loads every configured frequency list from dir. Files are matched to
// configured names by stem (filename without extension). Files without a
// configured name and configured names without a file are excluded with a
// warning; neither is fatal. The returned slice preserves the order of names,
// which downstream consolidation uses as tie-break priority.
func LoadDir(dir string, names []string, rules Rules, logger *slog.Logger) ([]*List, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	configured := make(map[string]bool, len(names))
	for _, name := range names {
		configured[name] = true
	}

	paths := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if !configured[stem] {
			logger.Warn("frequency file has no dictionary entry, excluding",
				slog.String("file", entry.Name()), slog.String("dir", dir))
			continue
		}
		paths[stem] = filepath.Join(dir, entry.Name())
	}

	lists := make([]*List, 0, len(names))
	for _, name := range names {
		path, ok := paths[name]
		if !ok {
			logger.Warn("configured dictionary has no frequency file, excluding",
				slog.String("dictionary", name), slog.String("dir", dir))
			continue
		}
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open frequency file: %w", err)
		}
		list, err := Parse(name, file, rules)
		file.Close()
		if err != nil {
			return nil, err
		}
		lists = append(lists, list)
	}
	return lists, nil
}
