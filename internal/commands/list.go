package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/output"
	"taskman/internal/store"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return nil }
func (c *ListCmd) Synopsis() string  { return "List all tasks" }
func (c *ListCmd) Usage() string     { return "taskman list" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		fmt.Fprintf(errOut, "usage: %s\n", c.Usage())
		return exitcode.UserError
	}

	tasks, err := st.List()
	if errors.Is(err, store.ErrNoStore) {
		// No store file yet; distinct from a store with no decodable tasks.
		fmt.Fprintln(out, "No tasks found. Create one using 'add' command.")
		return exitcode.Success
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}
	if len(tasks) == 0 {
		fmt.Fprintln(out, "No tasks found.")
		return exitcode.Success
	}

	f := output.Formatter{Color: !cfg.Plain}
	f.TaskTable(out, tasks)
	return exitcode.Success
}
