// Package config resolves the storage directory and file paths once at
// startup. The resolved Config is passed explicitly into every operation;
// nothing reads path state from globals.
package config

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// TasksFile is the task store filename.
	TasksFile = "tasks.txt"

	// TempFile is the transient file used during rewrites. It lives in the
	// same directory as the store so the final rename stays on one
	// filesystem.
	TempFile = "temp_tasks.txt"

	// OAuthClientFile is the Google OAuth client credentials filename.
	OAuthClientFile = "oauth_client.json"

	// TokenFile is the stored Google OAuth token filename.
	TokenFile = "token.json"

	// EnvFile is the optional env file loaded from the home directory.
	EnvFile = ".taskmanrc"
)

// Config holds resolved paths and per-invocation settings.
type Config struct {
	// Dir is the storage directory path.
	Dir string

	// Quiet suppresses informational output.
	Quiet bool

	// Plain disables colored output.
	Plain bool

	// Debug enables diagnostics on stderr.
	Debug bool
}

// New resolves the storage directory. Precedence: the --dir flag value,
// then TASKMAN_DIR, then $HOME/.local/taskmanager. Returns an error if no
// override is given and HOME is unset.
func New(dir string) (*Config, error) {
	if dir == "" {
		dir = os.Getenv("TASKMAN_DIR")
	}
	if dir == "" {
		home := os.Getenv("HOME")
		if home == "" {
			return nil, errors.New("HOME environment variable not set")
		}
		dir = filepath.Join(home, ".local", "taskmanager")
	}
	return &Config{Dir: dir}, nil
}

// TasksPath returns the path to the task store file.
func (c *Config) TasksPath() string {
	return filepath.Join(c.Dir, TasksFile)
}

// TempPath returns the path to the rewrite temp file.
func (c *Config) TempPath() string {
	return filepath.Join(c.Dir, TempFile)
}

// OAuthClientPath returns the path to the OAuth client credentials file.
func (c *Config) OAuthClientPath() string {
	return filepath.Join(c.Dir, OAuthClientFile)
}

// TokenPath returns the path to the stored OAuth token file.
func (c *Config) TokenPath() string {
	return filepath.Join(c.Dir, TokenFile)
}

// EnsureDir creates the storage directory if it doesn't exist, with
// owner-only permissions. An existing directory is not an error.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}

// HasOAuthClient checks if the OAuth client credentials file exists.
func (c *Config) HasOAuthClient() bool {
	_, err := os.Stat(c.OAuthClientPath())
	return err == nil
}

// HasToken checks if the token file exists.
func (c *Config) HasToken() bool {
	_, err := os.Stat(c.TokenPath())
	return err == nil
}

// RemoveToken deletes the token file.
func (c *Config) RemoveToken() error {
	return os.Remove(c.TokenPath())
}
