//go:build windows

package process

import (
	"os/exec"
	"strconv"
)

// KillProcessGroup terminates the browser tree rooted at pid with taskkill
// (/T walks child processes, /F forces).
func KillProcessGroup(pid int) {
	// launcher.Kill still runs after this, so a failure here is not fatal
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run() // #nosec G204 -- pid is an int
}
