package suite

import (
	"errors"
	"io"
	"os/exec"
)

// NewShellCase creates a Case whose check runs an external
// command and passes when the command exits 0. A non-zero exit
// is an ordinary failed check; a command that cannot be started
// at all surfaces as a case error with the launch failure
// message.
func NewShellCase(
	name, description string,
	command string,
	args ...string,
) *Case {
	return NewCase(name, description, func() bool {
		cmd := exec.Command(command, args...)
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard

		err := cmd.Run()
		if err == nil {
			return true
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false
		}

		// Launch failure, not a test outcome. The panic is
		// contained by Case.Run and becomes the outcome error.
		panic(err)
	})
}

// NewShellCaseDir is NewShellCase with an explicit working
// directory for the command.
func NewShellCaseDir(
	name, description string,
	workDir string,
	command string,
	args ...string,
) *Case {
	return NewCase(name, description, func() bool {
		cmd := exec.Command(command, args...)
		cmd.Dir = workDir
		cmd.Stdout = io.Discard
		cmd.Stderr = io.Discard

		err := cmd.Run()
		if err == nil {
			return true
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false
		}
		panic(err)
	})
}
