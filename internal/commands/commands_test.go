package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/store"
	"taskman/internal/testutil"
)

// runCommand is a helper to run a command against a store.
func runCommand(t *testing.T, cmd commands.Command, st store.Store, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
		Plain: true,
	}

	code = cmd.Run(context.Background(), cfg, st, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestAddCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	cmd := &commands.AddCmd{}

	stdout, stderr, code := runCommand(t, cmd, st, []string{"buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Task added: ID 1 - \"buy milk\"\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}

	tasks := st.Tasks()
	if len(tasks) != 1 || tasks[0].Description != "buy milk" || tasks[0].Completed {
		t.Errorf("store contents = %+v", tasks)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	st := testutil.NewFakeStore()
	cmd := &commands.AddCmd{}

	stdout, _, code := runCommand(t, cmd, st, []string{"buy milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("quiet add printed %q", stdout)
	}
}

func TestAddCommand_NoDescription(t *testing.T) {
	st := testutil.NewFakeStore()
	cmd := &commands.AddCmd{}

	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "description required") {
		t.Errorf("stderr = %q", stderr)
	}
	if !strings.Contains(stderr, "usage:") {
		t.Errorf("expected usage line, got %q", stderr)
	}
}

func TestListCommand_MissingStore(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Missing = true
	cmd := &commands.ListCmd{}

	stdout, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "No tasks found. Create one using 'add' command.\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestListCommand_EmptyStore(t *testing.T) {
	st := testutil.NewFakeStore()
	cmd := &commands.ListCmd{}

	stdout, _, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "No tasks found.\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestListCommand_Table(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Seed(
		store.Task{ID: 1, Description: "buy milk"},
		store.Task{ID: 2, Description: "pay rent", Completed: true},
	)
	cmd := &commands.ListCmd{}

	stdout, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "list_two_tasks", stdout)
}

func TestListCommand_UnexpectedArg(t *testing.T) {
	st := testutil.NewFakeStore()
	cmd := &commands.ListCmd{}

	_, stderr, code := runCommand(t, cmd, st, []string{"extra"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "unexpected argument") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestDoneCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Seed(store.Task{ID: 2, Description: "pay rent"})
	cmd := &commands.DoneCmd{}

	stdout, stderr, code := runCommand(t, cmd, st, []string{"2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Task ID 2 marked as DONE.\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
	if tasks := st.Tasks(); !tasks[0].Completed {
		t.Error("task 2 not marked completed")
	}
}

func TestDoneCommand_NotFoundExitsZero(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Seed(store.Task{ID: 1, Description: "only task"})
	cmd := &commands.DoneCmd{}

	stdout, stderr, code := runCommand(t, cmd, st, []string{"9"}, false)

	if code != exitcode.Success {
		t.Errorf("not-found should be informational; exit code = %d", code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "Task ID 9 not found.\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestDoneCommand_InvalidID(t *testing.T) {
	st := testutil.NewFakeStore()
	cmd := &commands.DoneCmd{}

	for _, arg := range []string{"0", "-3", "abc", "1.5"} {
		_, stderr, code := runCommand(t, cmd, st, []string{arg}, false)
		if code != exitcode.UserError {
			t.Errorf("done %s: expected exit code %d, got %d", arg, exitcode.UserError, code)
		}
		if !strings.Contains(stderr, "invalid task id") {
			t.Errorf("done %s: stderr = %q", arg, stderr)
		}
	}
}

func TestDoneCommand_MissingArg(t *testing.T) {
	st := testutil.NewFakeStore()
	cmd := &commands.DoneCmd{}

	_, stderr, code := runCommand(t, cmd, st, nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "task id required") || !strings.Contains(stderr, "usage:") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestDoneCommand_MissingStore(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Missing = true
	cmd := &commands.DoneCmd{}

	stdout, _, code := runCommand(t, cmd, st, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "No tasks found.\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestPendingCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Seed(store.Task{ID: 3, Description: "write report", Completed: true})
	cmd := &commands.PendingCmd{}

	stdout, _, code := runCommand(t, cmd, st, []string{"3"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "Task ID 3 marked as PENDING.\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
	if tasks := st.Tasks(); tasks[0].Completed {
		t.Error("task 3 still completed")
	}
}

func TestDeleteCommand(t *testing.T) {
	st := testutil.NewFakeStore()
	st.Seed(
		store.Task{ID: 1, Description: "buy milk"},
		store.Task{ID: 2, Description: "pay rent", Completed: true},
	)
	cmd := &commands.DeleteCmd{}

	stdout, _, code := runCommand(t, cmd, st, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "Task ID 1 deleted.\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
	tasks := st.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("store contents = %+v", tasks)
	}
}

func TestDeleteCommand_NotFoundExitsZero(t *testing.T) {
	st := testutil.NewFakeStore()
	cmd := &commands.DeleteCmd{}

	stdout, _, code := runCommand(t, cmd, st, []string{"7"}, false)

	if code != exitcode.Success {
		t.Errorf("not-found should be informational; exit code = %d", code)
	}
	if stdout != "Task ID 7 not found.\n" {
		t.Errorf("unexpected stdout: %q", stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskman 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
	for _, verb := range []string{"add", "list", "done", "pending", "delete"} {
		if !strings.Contains(stdout, "taskman "+verb) {
			t.Errorf("help output missing %q", verb)
		}
	}
}
