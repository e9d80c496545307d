//go:build !linux

package audio

import "os/exec"

// setPlatformSpecificAttrs is a no-op: Pdeathsig only exists on Linux.
// The process is still killed when the context of exec.CommandContext ends.
func setPlatformSpecificAttrs(*exec.Cmd) {}
