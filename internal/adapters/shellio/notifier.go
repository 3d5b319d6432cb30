// Package shellio bridges the process and the hosting shell session: it
// delivers alias delta scripts over the side channel the init script
// wires up, and renders that init script.
package shellio

import (
	"os"

	"go.uber.org/zap"

	"github.com/csouza/aliasmgr/internal/core/ports"
)

// deltaFD is the file descriptor the shell wrapper function captures.
const deltaFD = 3

// FDNotifier sends alias delta scripts to the cooperating shell function
// over file descriptor 3, keeping stdout free for user-facing output.
type FDNotifier struct {
	log *zap.SugaredLogger
}

var _ ports.ShellNotifier = (*FDNotifier)(nil)

func NewFDNotifier(log *zap.SugaredLogger) *FDNotifier {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &FDNotifier{log: log}
}

func (n *FDNotifier) Send(script string) error {
	f := os.NewFile(deltaFD, "shell-delta")
	if f == nil {
		n.log.Error("cannot send alias changes to the shell. Make sure 'aliasmgr init' is sourced in your shell configuration.")
		return nil
	}
	if _, err := f.WriteString(script + "\n"); err != nil {
		n.log.Error("failed to send alias changes to the shell. Make sure 'aliasmgr init' is sourced in your shell configuration.")
		n.log.Error(err)
		return nil
	}
	n.log.Debugf("sent alias changes to shell: %s", script)
	return nil
}
