package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Task is a single record in the store file.
type Task struct {
	ID          int
	Description string
	Completed   bool
}

// Encode renders a task as one store line, without the trailing newline.
// Format: id,status,description where status is 0 (pending) or 1 (done).
// The description is written verbatim, so it may contain commas.
func Encode(t Task) string {
	status := 0
	if t.Completed {
		status = 1
	}
	return fmt.Sprintf("%d,%d,%s", t.ID, status, t.Description)
}

// Decode parses one store line (without its trailing newline) into a Task.
// A line decodes only if it has an integer id, a comma, an integer status,
// a comma, and a non-empty description. Anything else is a malformed line:
// opaque to the caller and preserved as-is by rewrites.
func Decode(line string) (Task, bool) {
	idField, rest, ok := strings.Cut(line, ",")
	if !ok {
		return Task{}, false
	}
	id, err := strconv.Atoi(idField)
	if err != nil {
		return Task{}, false
	}
	statusField, desc, ok := strings.Cut(rest, ",")
	if !ok || desc == "" {
		return Task{}, false
	}
	status, err := strconv.Atoi(statusField)
	if err != nil {
		return Task{}, false
	}
	return Task{ID: id, Description: desc, Completed: status == 1}, true
}

// ParseID extracts the leading id from a store line, ignoring whatever
// follows the first comma. Used for id assignment, where lines that are
// otherwise malformed still reserve their id.
func ParseID(line string) (int, bool) {
	field, _, _ := strings.Cut(line, ",")
	id, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	return id, true
}
