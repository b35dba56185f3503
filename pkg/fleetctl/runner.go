package fleetctl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os/exec"
)

// DefaultMaxOutput bounds captured process output per stream (10 MiB).
const DefaultMaxOutput = 10 << 20

// Runner executes the fleetctl binary. Configuration is fixed at
// construction time; a Runner is safe for concurrent use because each Run
// owns all of its state.
type Runner struct {
	path      string
	maxOutput int
}

// NewRunner creates a runner for the executable at path. maxOutput bounds
// stdout and stderr independently; values <= 0 fall back to DefaultMaxOutput.
func NewRunner(path string, maxOutput int) *Runner {
	if maxOutput <= 0 {
		maxOutput = DefaultMaxOutput
	}
	return &Runner{path: path, maxOutput: maxOutput}
}

// Path returns the configured executable path.
func (r *Runner) Path() string { return r.path }

// Run invokes fleetctl once with the exact argument vector — arguments are
// never joined into a shell string. Empty arguments are rejected before any
// process is spawned. On success the captured stdout is returned; every
// failure (spawn error, non-zero exit, output bound exceeded, deadline
// expiry) is an *ExecError. No retries happen here.
func (r *Runner) Run(ctx context.Context, args []string) ([]byte, error) {
	for _, a := range args {
		if a == "" {
			return nil, fmt.Errorf("empty argument in fleetctl command")
		}
	}

	// Only the redacted vector may reach the log.
	log.Printf("执行 fleetctl: %s %v", r.path, Redact(args))

	cmd := exec.CommandContext(ctx, r.path, args...)
	stdout := &boundedBuffer{max: r.maxOutput}
	stderr := &boundedBuffer{max: r.maxOutput}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if stdout.overflow || stderr.overflow {
		return nil, &ExecError{
			ExitDetail: fmt.Sprintf("output too large (limit %d bytes)", r.maxOutput),
			Stderr:     stderr.buf.String(),
		}
	}
	if err != nil {
		detail := err.Error()
		if ctx.Err() == context.DeadlineExceeded {
			detail = "command timed out"
		}
		return nil, &ExecError{
			ExitDetail: detail,
			Stderr:     stderr.buf.String(),
		}
	}
	return stdout.buf.Bytes(), nil
}

var errOutputLimit = errors.New("output limit exceeded")

// boundedBuffer accumulates writes up to max bytes and then fails, which
// aborts the exec copy loop and keeps a misbehaving child from growing the
// buffer without bound.
type boundedBuffer struct {
	buf      bytes.Buffer
	max      int
	overflow bool
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	if b.overflow {
		return 0, errOutputLimit
	}
	if b.buf.Len()+len(p) > b.max {
		b.overflow = true
		return 0, errOutputLimit
	}
	return b.buf.Write(p)
}
