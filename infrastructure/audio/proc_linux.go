//go:build linux

package audio

import (
	"os/exec"
	"syscall"
)

// setPlatformSpecificAttrs makes the kernel kill ffmpeg if the bot process dies mid-transcode.
func setPlatformSpecificAttrs(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Pdeathsig: syscall.SIGKILL,
	}
}
