// Package crossimpl runs the golden scenarios against a reference decoder
// written in another language, to check that the wire format is genuinely
// interoperable and not merely self-consistent within this Go
// implementation. This is a peripheral collaborator (SPEC_FULL.md §6.5),
// grounded on the teacher's cross_impl_test.go: it shells out to a script
// via os/exec, parses a JSON result from stdout, and skips cleanly when the
// interpreter or script isn't available rather than failing the suite.
package crossimpl

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
)

// Result is the JSON response a reference script prints on stdout.
type Result struct {
	Success bool   `json:"success"`
	Hex     string `json:"hex,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Unavailable reports why a reference run could not be attempted: the
// interpreter or the script itself is missing. Callers should treat this as
// a skip condition, not a failure.
type Unavailable struct {
	Reason string
}

func (e *Unavailable) Error() string { return e.Reason }

// Run executes `interpreter scriptPath args...` and parses its stdout as a
// Result. It returns *Unavailable if the interpreter isn't on PATH or the
// script cannot be found, so callers (typically a test's t.Skip) can
// distinguish "environment doesn't have this" from "the reference
// implementation disagreed".
func Run(interpreter, scriptPath string, args ...string) (Result, error) {
	if _, err := exec.LookPath(interpreter); err != nil {
		return Result{}, &Unavailable{Reason: fmt.Sprintf("%s not on PATH", interpreter)}
	}
	if _, err := os.Stat(scriptPath); err != nil {
		return Result{}, &Unavailable{Reason: fmt.Sprintf("script %s not available: %v", scriptPath, err)}
	}

	cmdArgs := append([]string{scriptPath}, args...)
	cmd := exec.Command(interpreter, cmdArgs...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		if len(output) > 0 {
			var result Result
			if jsonErr := json.Unmarshal(output, &result); jsonErr == nil {
				return result, nil
			}
		}
		return Result{}, fmt.Errorf("crossimpl: %s %s: %w", interpreter, scriptPath, err)
	}

	var result Result
	if err := json.Unmarshal(output, &result); err != nil {
		return Result{}, fmt.Errorf("crossimpl: parse output: %w (output: %s)", err, output)
	}
	return result, nil
}
