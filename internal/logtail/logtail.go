// Package logtail reads the tail of the application's log file. The TUI owns
// the terminal, so the logger writes to a file; the log overlay shows its
// most recent lines through this package.
package logtail

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path, oldest
// first. A non-positive maxLines returns every line. A missing file is not
// an error; it simply has no lines yet.
func Read(path string, maxLines int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log: %w", err)
	}

	text := strings.TrimRight(string(data), "\n")
	if text == "" {
		return nil, nil
	}
	lines := strings.Split(text, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines, nil
}
