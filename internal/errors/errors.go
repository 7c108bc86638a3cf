// Package errors provides sentinel errors and custom error types for gitsplit.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrConfig indicates that the configuration could not be loaded or is invalid
	ErrConfig = errors.New("invalid configuration")

	// ErrConfigNotFound indicates that the configuration file does not exist
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrNoMatchingBranch indicates that an origin pattern matched no source branch
	ErrNoMatchingBranch = errors.New("origin pattern matched no branch")

	// ErrCommandFailed indicates that an external command exited with an error
	ErrCommandFailed = errors.New("command failed")
)

// ConfigError represents an error while loading or validating the configuration
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("invalid configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrConfig
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a new ConfigError
func NewConfigError(path string, err error) *ConfigError {
	return &ConfigError{Path: path, Err: err}
}

// PatternError represents an origin pattern that matched none of the source branches
type PatternError struct {
	Pattern  string
	Branches []string
}

func (e *PatternError) Error() string {
	if len(e.Branches) == 0 {
		return fmt.Sprintf("origin pattern %q matched no branch: the source has no branches", e.Pattern)
	}
	return fmt.Sprintf("origin pattern %q matched no branch (known branches: %s)", e.Pattern, strings.Join(e.Branches, ", "))
}

// Is returns true if the target error is ErrNoMatchingBranch
func (e *PatternError) Is(target error) bool {
	return target == ErrNoMatchingBranch
}

// NewPatternError creates a new PatternError
func NewPatternError(pattern string, branches []string) *PatternError {
	return &PatternError{Pattern: pattern, Branches: branches}
}

// CommandError represents an error from an external command execution
type CommandError struct {
	Command string
	Args    []string
	Dir     string
	Stdout  string
	Stderr  string
	Err     error
}

// CommandLine returns the command and its arguments as a single string
func (e *CommandError) CommandLine() string {
	if len(e.Args) == 0 {
		return e.Command
	}
	return e.Command + " " + strings.Join(e.Args, " ")
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.CommandLine())
	if e.Dir != "" {
		msg += fmt.Sprintf(" (in %s)", e.Dir)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", stderr)
	}
	if stdout := strings.TrimSpace(e.Stdout); stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandError creates a new CommandError
func NewCommandError(command string, args []string, dir, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Args:    args,
		Dir:     dir,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
