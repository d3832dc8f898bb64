package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/store"
)

func init() {
	Register(&DoneCmd{})
	Register(&PendingCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "taskman done <task-id>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	return runSetStatus(cfg, st, c, args, true, out, errOut)
}

// PendingCmd implements the pending command, the inverse of done.
type PendingCmd struct{}

func (c *PendingCmd) Name() string      { return "pending" }
func (c *PendingCmd) Aliases() []string { return nil }
func (c *PendingCmd) Synopsis() string  { return "Mark a task pending" }
func (c *PendingCmd) Usage() string     { return "taskman pending <task-id>" }
func (c *PendingCmd) NeedsStore() bool  { return true }

func (c *PendingCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PendingCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	return runSetStatus(cfg, st, c, args, false, out, errOut)
}

// runSetStatus is the shared implementation for done and pending.
func runSetStatus(cfg *config.Config, st store.Store, cmd Command, args []string, completed bool, out, errOut io.Writer) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		fmt.Fprintf(errOut, "usage: %s\n", cmd.Usage())
		return exitcode.UserError
	}

	found, err := st.SetStatus(id, completed)
	if errors.Is(err, store.ErrNoStore) {
		fmt.Fprintln(out, "No tasks found.")
		return exitcode.Success
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}
	if !found {
		// Informational, not a failure.
		fmt.Fprintf(out, "Task ID %d not found.\n", id)
		return exitcode.Success
	}

	if !cfg.Quiet {
		label := "PENDING"
		if completed {
			label = "DONE"
		}
		fmt.Fprintf(out, "Task ID %d marked as %s.\n", id, label)
	}
	return exitcode.Success
}
