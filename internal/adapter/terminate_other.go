//go:build !unix

package adapter

import (
	"errors"
	"os"
	"os/exec"
)

func configureProcessGroup(*exec.Cmd) {}

// ProcessTerminator kills the child with the platform's native terminate
// call. Grandchildren are not reached on these platforms.
type ProcessTerminator struct{}

// Terminate implements ChildTerminator.
func (t ProcessTerminator) Terminate(process *os.Process) error {
	return t.Kill(process)
}

// Kill implements ChildTerminator.
func (ProcessTerminator) Kill(process *os.Process) error {
	err := process.Kill()
	if errors.Is(err, os.ErrProcessDone) {
		return nil
	}

	return err
}

// DefaultTerminator returns the terminator for this platform.
func DefaultTerminator() ChildTerminator {
	return ProcessTerminator{}
}
