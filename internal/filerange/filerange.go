// Package filerange reads and rewrites 1-indexed inclusive line ranges of
// text files. A zero bound means "default": the first line for start, the
// last line for end. Bounds are validated before any file is touched.
package filerange

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidRange reports line bounds that fail validation.
	ErrInvalidRange = errors.New("invalid line range")

	// ErrInvalidEncoding reports a file that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)

// Read returns the text of lines [start, end] of the file at path, with
// the original line terminators preserved. Out-of-range bounds clamp to
// the file's contents.
func Read(path string, start, end int) (string, error) {
	if err := validate(start, end); err != nil {
		return "", err
	}

	lines, err := readLines(path)
	if err != nil {
		return "", err
	}

	s := 0
	if start > 0 {
		s = start - 1
	}
	e := len(lines)
	if end > 0 && end < e {
		e = end
	}
	if s >= len(lines) || e < s {
		return "", nil
	}
	return strings.Join(lines[s:e], ""), nil
}

// Replace splices content over lines [start, end] of the file at path and
// writes the whole file back. A start past the end of the file appends the
// content instead (end is ignored); a zero or oversized end clamps to the
// last line. There is no partial-write atomicity.
func Replace(path, content string, start, end int) error {
	if err := validate(start, end); err != nil {
		return err
	}

	lines, err := readLines(path)
	if err != nil {
		return err
	}

	idxStart := 0
	if start > 0 {
		idxStart = start - 1
	}
	idxEnd := len(lines) - 1
	if end > 0 {
		idxEnd = end - 1
	}
	if idxEnd < idxStart {
		idxEnd = idxStart
	}

	replacement := splitLines(content)
	var merged []string
	if idxStart >= len(lines) {
		merged = append(lines, replacement...)
	} else {
		if idxEnd > len(lines)-1 {
			idxEnd = len(lines) - 1
		}
		merged = append(merged, lines[:idxStart]...)
		merged = append(merged, replacement...)
		merged = append(merged, lines[idxEnd+1:]...)
	}

	if err := os.WriteFile(path, []byte(strings.Join(merged, "")), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Write creates or truncates the file at path with content.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func validate(start, end int) error {
	if start < 0 {
		return fmt.Errorf("%w: start line %d must be positive", ErrInvalidRange, start)
	}
	if end < 0 {
		return fmt.Errorf("%w: end line %d must be positive", ErrInvalidRange, end)
	}
	if start > 0 && end > 0 && start > end {
		return fmt.Errorf("%w: start line %d is after end line %d", ErrInvalidRange, start, end)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("reading %s: %w", path, ErrInvalidEncoding)
	}
	return splitLines(string(data)), nil
}

// splitLines splits text into lines, each keeping its terminator. A
// trailing newline does not produce an empty final element.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
