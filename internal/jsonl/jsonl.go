// Package jsonl reads and writes line-delimited JSON files. Both the
// question bank and the progress log are stored in this format: one
// JSON object per line, blank lines ignored.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

// scanner buffer sized for question lines that carry the full syllable pool
const maxLineSize = 4 * 1024 * 1024

// FormatError reports the first malformed line in a file. The whole
// load aborts on it; there is no best-effort partial loading.
type FormatError struct {
	Path string
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: invalid record: %v", e.Path, e.Line, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Read loads every non-blank line of path as a value of T, preserving
// file order. A missing file surfaces the os.Open error so callers can
// check errors.Is(err, fs.ErrNotExist) and decide whether that is fatal.
func Read[T any](path string) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var items []T
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var item T
		if err := json.Unmarshal([]byte(text), &item); err != nil {
			return nil, &FormatError{Path: path, Line: line, Err: err}
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Err() for %s > %w", path, err)
	}
	return items, nil
}

// Write replaces path with one JSON object per item. Used by the batch
// generators only; the progress log is never written through here.
func Write[T any](path string, items []T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	writer := bufio.NewWriter(file)
	for _, item := range items {
		contents, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("json.Marshal > %w", err)
		}
		if _, err := writer.Write(append(contents, '\n')); err != nil {
			return fmt.Errorf("writer.Write > %w", err)
		}
	}
	if err := writer.Flush(); err != nil {
		return fmt.Errorf("writer.Flush > %w", err)
	}
	return nil
}

// Append adds a single record to the end of path, creating the file if
// needed. The record and its trailing newline go out in one write call
// under an exclusive advisory lock, and the file is synced before
// returning, so concurrent appenders never interleave partial lines and
// a crash after return cannot lose the record.
func Append(path string, item any) error {
	contents, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("json.Marshal > %w", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("os.OpenFile(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := unix.Flock(int(file.Fd()), unix.LOCK_EX); err != nil {
		return fmt.Errorf("unix.Flock(%s) > %w", path, err)
	}
	defer func() {
		_ = unix.Flock(int(file.Fd()), unix.LOCK_UN)
	}()

	if _, err := file.Write(append(contents, '\n')); err != nil {
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("file.Sync > %w", err)
	}
	return nil
}
