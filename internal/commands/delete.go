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
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *DeleteCmd) Usage() string     { return "taskman delete <task-id>" }
func (c *DeleteCmd) NeedsStore() bool  { return true }

func (c *DeleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		fmt.Fprintf(errOut, "usage: %s\n", c.Usage())
		return exitcode.UserError
	}

	found, err := st.Delete(id)
	if errors.Is(err, store.ErrNoStore) {
		fmt.Fprintln(out, "No tasks found.")
		return exitcode.Success
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}
	if !found {
		fmt.Fprintf(out, "Task ID %d not found.\n", id)
		return exitcode.Success
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task ID %d deleted.\n", id)
	}
	return exitcode.Success
}
