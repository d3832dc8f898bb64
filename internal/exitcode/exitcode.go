// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion. Note that "task id not
	// found" is informational and exits with Success.
	Success = 0

	// UserError indicates a user error: unknown command, missing or
	// invalid arguments, unusable environment.
	UserError = 1

	// AuthError indicates a Google auth/credentials error.
	AuthError = 2

	// StoreError indicates an I/O failure against the local store or the
	// remote backend.
	StoreError = 3
)
