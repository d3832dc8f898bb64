// Package cli parses arguments and dispatches to commands.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/exitcode"
	"taskman/internal/store"
)

// StoreFactory creates a Store from config.
// Used to inject the backend during dispatch.
type StoreFactory func(cfg *config.Config) (store.Store, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  StoreFactory
	color    bool
}

// NewDispatcher creates a dispatcher. color is the terminal's capability;
// individual invocations can still turn it off with --plain.
func NewDispatcher(registry *commands.Registry, factory StoreFactory, color bool) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		color:    color,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(errOut, commands.HelpText)
		return exitcode.UserError
	}

	cmdName := args[0]
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		fmt.Fprint(errOut, commands.HelpText)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var dir string
	var quiet bool
	var plain bool
	var debug bool

	fs.StringVar(&dir, "dir", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&plain, "plain", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "flag needs an argument") {
			flagPart := strings.TrimPrefix(strings.TrimSpace(strings.Split(errStr, ":")[0]), "flag ")
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
			return exitcode.UserError
		}
		if rest, ok := strings.CutPrefix(errStr, "flag provided but not defined: "); ok {
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", rest)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	// A flag that lands after positional arguments shows up here.
	positional := fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return exitcode.UserError
	}

	// The storage directory must be resolvable and present before any
	// command logic runs, matching the startup contract.
	cfg, err := config.New(dir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Plain = plain || !d.color
	cfg.Debug = debug

	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: creating task directory: %v\n", err)
		return exitcode.UserError
	}

	var st store.Store
	if cmd.NeedsStore() {
		st, err = d.factory(cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.StoreError
		}
		if cfg.Debug {
			fmt.Fprintf(errOut, "debug: storage directory %s\n", cfg.Dir)
		}
	}

	return cmd.Run(ctx, cfg, st, positional, out, errOut)
}
