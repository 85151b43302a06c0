//go:build unix

package colorize

import (
	"os/exec"
	"syscall"
)

// detach puts the colorizer in its own process group so a terminal-delivered
// interrupt reaches only the countdown process.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
