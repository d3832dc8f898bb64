package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskman/internal/backend/googletasks"
	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/store"
)

func init() {
	Register(&PushCmd{})
}

// Remote is the surface the push command needs from a remote task list.
type Remote interface {
	// OpenTitles returns the titles of open remote tasks.
	OpenTitles(ctx context.Context) (map[string]bool, error)

	// Create adds one open remote task with the given title.
	Create(ctx context.Context, title string) error
}

// RemoteFactory creates a Remote from config. Injected in tests.
type RemoteFactory func(ctx context.Context, cfg *config.Config) (Remote, error)

// PushCmd implements the push command: a one-way copy of local pending
// tasks to the default Google Tasks list. Nothing is pulled back.
type PushCmd struct {
	newRemote RemoteFactory
}

// SetRemoteFactory overrides the Google Tasks client (for testing).
func (c *PushCmd) SetRemoteFactory(f RemoteFactory) {
	c.newRemote = f
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Push pending tasks to Google Tasks" }
func (c *PushCmd) Usage() string     { return "taskman push" }
func (c *PushCmd) NeedsStore() bool  { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *PushCmd) Run(ctx context.Context, cfg *config.Config, st store.Store, args []string, out, errOut io.Writer) int {
	newRemote := c.newRemote
	if newRemote == nil {
		newRemote = func(ctx context.Context, cfg *config.Config) (Remote, error) {
			return googletasks.New(ctx, cfg)
		}
		if !cfg.HasOAuthClient() || !cfg.HasToken() {
			fmt.Fprintln(errOut, "error: not logged in (run: taskman login)")
			return exitcode.AuthError
		}
	}

	tasks, err := st.List()
	if errors.Is(err, store.ErrNoStore) {
		fmt.Fprintln(out, "No tasks found.")
		return exitcode.Success
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StoreError
	}

	var pending []store.Task
	for _, t := range tasks {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	if len(pending) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no pending tasks to push")
		}
		return exitcode.Success
	}

	remote, err := newRemote(ctx, cfg)
	if err != nil {
		if strings.Contains(err.Error(), "token") || strings.Contains(err.Error(), "auth") {
			fmt.Fprintf(errOut, "error: auth error: %v\n", err)
			return exitcode.AuthError
		}
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.StoreError
	}

	titles, err := remote.OpenTitles(ctx)
	if err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.StoreError
	}

	pushed := 0
	for _, t := range pending {
		if titles[t.Description] {
			continue // already on the remote list
		}
		if err := remote.Create(ctx, t.Description); err != nil {
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.StoreError
		}
		pushed++
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "Pushed %d task(s) to Google Tasks.\n", pushed)
	}
	return exitcode.Success
}
