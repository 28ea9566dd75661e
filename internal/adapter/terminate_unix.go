//go:build unix

package adapter

import (
	"errors"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// configureProcessGroup puts the child in a new process group whose id is
// the child's pid, so the whole group can be signalled at once.
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// ProcessGroupTerminator sends SIGTERM to the child's process group so that
// grandchildren (rustc, test binaries) stop too.
type ProcessGroupTerminator struct{}

// Terminate implements ChildTerminator.
func (ProcessGroupTerminator) Terminate(process *os.Process) error {
	return signalGroup(process, unix.SIGTERM)
}

// Kill implements ChildTerminator.
func (ProcessGroupTerminator) Kill(process *os.Process) error {
	return signalGroup(process, unix.SIGKILL)
}

func signalGroup(process *os.Process, sig unix.Signal) error {
	err := unix.Kill(-process.Pid, sig)
	if errors.Is(err, unix.ESRCH) {
		// raced with the child exiting
		return nil
	}

	return err
}

// DefaultTerminator returns the terminator for this platform.
func DefaultTerminator() ChildTerminator {
	return ProcessGroupTerminator{}
}
