package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// ReadEmployerIDs reads one employer id per line. Blank lines and lines
// starting with '#' are ignored; anything after the first whitespace-delimited
// token is treated as a trailing note.
func ReadEmployerIDs(r io.Reader) ([]string, error) {
	var ids []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ids = append(ids, strings.Fields(line)[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("batch: read ids: %w", err)
	}

	return ids, nil
}

// LoadEmployerIDs reads ids from path. A missing file yields fallback.
func LoadEmployerIDs(path string, fallback []string) ([]string, bool, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return append([]string(nil), fallback...), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("batch: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	ids, err := ReadEmployerIDs(f)
	if err != nil {
		return nil, true, err
	}
	return ids, true, nil
}

// SplitList splits a comma-separated list, dropping empty items
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
