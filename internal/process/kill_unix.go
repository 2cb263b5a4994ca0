//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the group led by pid, taking down the
// Chrome renderer and GPU helpers along with the browser.
func KillProcessGroup(pid int) {
	// launcher.Kill still runs after this, so a failure here is not fatal
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
