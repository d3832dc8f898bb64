// Package store persists tasks in a flat text file, one record per line.
// The file is the sole source of truth: edits and deletions are applied by
// streaming every line into a temporary file and renaming it over the
// original. Lines that do not decode as tasks pass through byte-for-byte.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoStore is returned by read and write paths when the store file does
// not exist yet. Callers treat it as "no tasks", not as a failure.
var ErrNoStore = errors.New("task store does not exist")

// Store defines the operations commands run against the task store.
type Store interface {
	// NextID returns the id the next added task will receive:
	// 1 for a missing store, otherwise the highest id on file plus one.
	NextID() (int, error)

	// Add appends a new pending task and returns it with its assigned id.
	Add(description string) (Task, error)

	// List returns all decodable tasks in file order.
	// Returns ErrNoStore if the store file does not exist.
	List() ([]Task, error)

	// SetStatus rewrites the store with the matching task's status changed.
	// Reports whether a task with the given id was found.
	SetStatus(id int, completed bool) (bool, error)

	// Delete rewrites the store with the matching task's line removed.
	// Reports whether a task with the given id was found.
	Delete(id int) (bool, error)
}

// FileStore implements Store on a flat text file. The paths are resolved
// once at startup and injected; the temp path must be on the same
// filesystem as the store file so the final rename is atomic.
type FileStore struct {
	path string
	tmp  string
}

// NewFileStore creates a store over the given file, using tmp for rewrites.
func NewFileStore(path, tmp string) *FileStore {
	return &FileStore{path: path, tmp: tmp}
}

// Path returns the store file path.
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) NextID() (int, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 1, nil
		}
		return 0, fmt.Errorf("opening task file: %w", err)
	}
	defer f.Close()

	max := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// Lines without a parseable leading id contribute nothing.
		if id, ok := ParseID(scanner.Text()); ok && id > max {
			max = id
		}
	}
	if err := scanner.Err(); err != nil {
		return 0, fmt.Errorf("reading task file: %w", err)
	}
	return max + 1, nil
}

func (s *FileStore) Add(description string) (Task, error) {
	if strings.TrimSpace(description) == "" {
		return Task{}, errors.New("description required")
	}
	if strings.ContainsAny(description, "\r\n") {
		return Task{}, errors.New("description may not contain line breaks")
	}

	id, err := s.NextID()
	if err != nil {
		return Task{}, err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return Task{}, fmt.Errorf("opening task file for append: %w", err)
	}

	t := Task{ID: id, Description: description}
	if _, err := f.WriteString(Encode(t) + "\n"); err != nil {
		f.Close()
		return Task{}, fmt.Errorf("writing task: %w", err)
	}
	if err := f.Close(); err != nil {
		return Task{}, fmt.Errorf("writing task: %w", err)
	}
	return t, nil
}

func (s *FileStore) List() ([]Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoStore
		}
		return nil, fmt.Errorf("opening task file: %w", err)
	}
	defer f.Close()

	var tasks []Task
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if t, ok := Decode(scanner.Text()); ok {
			tasks = append(tasks, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading task file: %w", err)
	}
	return tasks, nil
}

func (s *FileStore) SetStatus(id int, completed bool) (bool, error) {
	found := false
	err := s.rewrite(func(raw string) (string, bool) {
		t, ok := Decode(strings.TrimSuffix(raw, "\n"))
		if !ok || t.ID != id {
			return raw, true
		}
		found = true
		t.Completed = completed
		return Encode(t) + "\n", true
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

func (s *FileStore) Delete(id int) (bool, error) {
	found := false
	err := s.rewrite(func(raw string) (string, bool) {
		t, ok := Decode(strings.TrimSuffix(raw, "\n"))
		if !ok || t.ID != id {
			return raw, true
		}
		found = true
		return "", false
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// rewrite streams every line of the store through edit into the temp file,
// then renames the temp file over the store in a single step, so an
// interrupted rewrite never leaves a missing or half-written store.
//
// edit receives the raw line exactly as stored, including its trailing
// newline if present; the last line of a file may lack one, and a line
// copied through unchanged keeps that exact shape. Returning false drops
// the line.
func (s *FileStore) rewrite(edit func(raw string) (string, bool)) error {
	in, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoStore
		}
		return fmt.Errorf("opening task file: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(s.tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}

	fail := func(err error) error {
		out.Close()
		os.Remove(s.tmp)
		return err
	}

	w := bufio.NewWriter(out)
	r := bufio.NewReader(in)
	for {
		raw, readErr := r.ReadString('\n')
		if raw != "" {
			if line, keep := edit(raw); keep {
				if _, err := w.WriteString(line); err != nil {
					return fail(fmt.Errorf("writing temporary file: %w", err))
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fail(fmt.Errorf("reading task file: %w", readErr))
		}
	}

	if err := w.Flush(); err != nil {
		return fail(fmt.Errorf("writing temporary file: %w", err))
	}
	if err := out.Close(); err != nil {
		os.Remove(s.tmp)
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err := os.Rename(s.tmp, s.path); err != nil {
		os.Remove(s.tmp)
		return fmt.Errorf("replacing task file: %w", err)
	}
	return nil
}
