package commandmanager

import (
	"context"
	"time"
)

// CommandConfig describes a single command invocation.
type CommandConfig struct {
	Command string
	Args    []string
	Env     []string
	Stdin   string
}

// CommandResult encapsulates the results from a command execution.
type CommandResult struct {
	Command   string
	STDOUT    string
	STDERR    string
	ExitCode  int
	Duration  time.Duration
	Timestamp time.Time
}

// CommandManager provides methods to execute commands on the local system.
type CommandManager interface {
	// Run executes a command and returns its captured output.
	Run(ctx context.Context, config CommandConfig) (CommandResult, error)

	// LookPath reports where a command resolves on PATH.
	LookPath(name string) (string, error)
}
