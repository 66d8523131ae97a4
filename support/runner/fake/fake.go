package fake

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/openshift/hcpctl/support/runner"
)

// Call is a recorded invocation.
type Call struct {
	Name string
	Args []string
}

func (c Call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Response is returned for any invocation whose command line starts with the registered prefix.
type Response struct {
	Output []byte
	Err    error
}

// Runner records invocations and replays canned responses. Binaries are
// installed unless listed in Missing.
type Runner struct {
	Missing   map[string]bool
	Responses map[string]Response
	Calls     []Call
}

var _ runner.Runner = &Runner{}

func New() *Runner {
	return &Runner{
		Missing:   map[string]bool{},
		Responses: map[string]Response{},
	}
}

// On registers a response for command lines starting with prefix, e.g. "rosa whoami".
func (r *Runner) On(prefix string, output string, err error) *Runner {
	r.Responses[prefix] = Response{Output: []byte(output), Err: err}
	return r
}

func (r *Runner) LookPath(file string) (string, error) {
	if r.Missing[file] {
		return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
	}
	return "/usr/local/bin/" + file, nil
}

func (r *Runner) Output(_ context.Context, name string, args ...string) ([]byte, error) {
	call := Call{Name: name, Args: args}
	r.Calls = append(r.Calls, call)
	if r.Missing[name] {
		return nil, fmt.Errorf("failed to run %q: %w", call.String(), exec.ErrNotFound)
	}
	resp := r.lookup(call.String())
	return resp.Output, resp.Err
}

func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	_, err := r.Output(ctx, name, args...)
	return err
}

// lookup picks the longest registered prefix matching the command line.
func (r *Runner) lookup(commandLine string) Response {
	var best string
	for prefix := range r.Responses {
		if strings.HasPrefix(commandLine, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	return r.Responses[best]
}

// CommandLines returns every recorded invocation rendered as a single string.
func (r *Runner) CommandLines() []string {
	lines := make([]string, 0, len(r.Calls))
	for _, c := range r.Calls {
		lines = append(lines, c.String())
	}
	return lines
}
