// Package main is the entry point for the taskman CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"taskman/internal/cli"
	"taskman/internal/commands"
	"taskman/internal/config"
	"taskman/internal/store"
)

func main() {
	// The home directory anchors the storage path; without it nothing
	// below can run.
	home := os.Getenv("HOME")
	if home == "" {
		fmt.Fprintln(os.Stderr, "error: HOME environment variable not set")
		os.Exit(1)
	}

	// Optional per-user env file (TASKMAN_DIR, NO_COLOR, ...). Absence is
	// fine.
	_ = godotenv.Load(filepath.Join(home, config.EnvFile))

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	factory := func(cfg *config.Config) (store.Store, error) {
		return store.NewFileStore(cfg.TasksPath(), cfg.TempPath()), nil
	}

	color := isatty.IsTerminal(os.Stdout.Fd()) && os.Getenv("NO_COLOR") == ""

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory, color)
	os.Exit(dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}
