package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/store"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "taskman help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, HelpText)
	return exitcode.Success
}

// HelpText is the usage message. The dispatcher prints it on missing or
// unknown commands as well.
const HelpText = `Usage:
  taskman add <description...>   Add a pending task
  taskman list                   List all tasks
  taskman done <task-id>         Mark a task completed
  taskman pending <task-id>      Mark a task pending
  taskman delete <task-id>       Delete a task
  taskman push                   Push pending tasks to Google Tasks
  taskman login                  Authenticate with Google
  taskman logout                 Remove stored credentials
  taskman help                   Print usage
  taskman version                Print version

Common flags:
  --dir <path>     Override storage directory (default $HOME/.local/taskmanager)
  --quiet          Suppress informational output
  --plain          Disable colored output
  --debug          Print debug logs to stderr
`
