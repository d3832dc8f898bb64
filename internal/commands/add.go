package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/store"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a pending task" }
func (c *AddCmd) Usage() string     { return "taskman add <description...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	// All positional words join into one description.
	description := strings.Join(args, " ")
	if strings.TrimSpace(description) == "" {
		fmt.Fprintln(errOut, "error: description required")
		fmt.Fprintf(errOut, "usage: %s\n", c.Usage())
		return exitcode.UserError
	}
	if strings.ContainsAny(description, "\r\n") {
		fmt.Fprintln(errOut, "error: description may not contain line breaks")
		return exitcode.UserError
	}

	t, err := st.Add(description)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Task added: ID %d - \"%s\"\n", t.ID, t.Description)
	}
	return exitcode.Success
}
