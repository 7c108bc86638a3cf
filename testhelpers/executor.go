package testhelpers

import (
	"context"
	"errors"
	"strings"
	"sync"

	gserrors "gitsplit.dev/gitsplit/internal/errors"
)

// Call is one command recorded by a FakeExecutor.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Line returns the command line of the call.
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Response is the scripted result of a command.
type Response struct {
	Output string
	Err    error
}

// FakeExecutor records every command it is asked to run and answers from a
// table keyed by command-line prefix. Unknown commands succeed with empty output.
// It is safe for concurrent use.
type FakeExecutor struct {
	mu        sync.Mutex
	calls     []Call
	responses []scripted
}

type scripted struct {
	prefix   string
	response Response
}

// NewFakeExecutor creates an empty FakeExecutor.
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{}
}

// On scripts the output for commands whose line starts with prefix.
// Later registrations take precedence.
func (f *FakeExecutor) On(prefix, output string) *FakeExecutor {
	return f.respond(prefix, Response{Output: output})
}

// Fail scripts a command failure for commands whose line starts with prefix.
func (f *FakeExecutor) Fail(prefix, stderr string) *FakeExecutor {
	return f.respond(prefix, Response{Err: gserrors.NewCommandError(prefix, nil, "", "", stderr, errors.New("exit status 1"))})
}

func (f *FakeExecutor) respond(prefix string, response Response) *FakeExecutor {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses = append(f.responses, scripted{prefix: prefix, response: response})
	return f
}

// Run implements git.Executor.
func (f *FakeExecutor) Run(_ context.Context, dir, name string, args ...string) (string, error) {
	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)

	line := call.Line()
	for i := len(f.responses) - 1; i >= 0; i-- {
		if strings.HasPrefix(line, f.responses[i].prefix) {
			return f.responses[i].response.Output, f.responses[i].response.Err
		}
	}
	return "", nil
}

// Calls returns every recorded call in order.
func (f *FakeExecutor) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Lines returns the command lines of recorded calls starting with prefix.
func (f *FakeExecutor) Lines(prefix string) []string {
	var lines []string
	for _, call := range f.Calls() {
		if line := call.Line(); strings.HasPrefix(line, prefix) {
			lines = append(lines, line)
		}
	}
	return lines
}
