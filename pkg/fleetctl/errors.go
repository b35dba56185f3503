package fleetctl

import "fmt"

// ExecError represents a failed fleetctl invocation: the process could not
// be spawned, exited non-zero, exceeded the output limit, or was killed by
// a deadline. ExitDetail carries the OS/process-level description, Stderr
// the captured error stream (may be empty).
type ExecError struct {
	ExitDetail string
	Stderr     string
}

func (e *ExecError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("fleetctl failed: %s: %s", e.ExitDetail, e.Stderr)
	}
	return fmt.Sprintf("fleetctl failed: %s", e.ExitDetail)
}

// ParseError means every output-recovery strategy was exhausted. Detail
// keeps the direct-decode error message for operator diagnosis.
type ParseError struct {
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse fleetctl output: %s", e.Detail)
}
