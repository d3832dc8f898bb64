package commands

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrTaskIDRequired indicates no task id argument was provided.
var ErrTaskIDRequired = errors.New("task id required")

// parseTaskID parses the single task-id argument for done/pending/delete.
// The id must be a positive integer; anything else is a user error.
func parseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id: %s (expected a positive integer)", args[0])
	}
	return id, nil
}
