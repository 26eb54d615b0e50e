//go:build windows

package winexec

import (
	"os/exec"
	"syscall"
)

// hideWindow keeps console tools from flashing a window on screen.
func hideWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
}
