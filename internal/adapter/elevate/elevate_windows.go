//go:build windows

// Package elevate handles the administrator-privileges bootstrap: the
// scheduling and account tools refuse to work from an unelevated process.
package elevate

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
)

// IsElevated reports whether the current process token carries admin rights.
func IsElevated() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// Relaunch starts a new copy of this process with the "runas" verb, which
// triggers the UAC prompt. The caller should exit 0 once this succeeds.
func Relaunch() error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}

	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return err
	}
	exePtr, err := windows.UTF16PtrFromString(exe)
	if err != nil {
		return err
	}
	argsPtr, err := windows.UTF16PtrFromString(commandLine(os.Args[1:]))
	if err != nil {
		return err
	}

	return windows.ShellExecute(0, verb, exePtr, argsPtr, nil, windows.SW_NORMAL)
}

// commandLine rebuilds the argument string for ShellExecute. Each argument is
// quoted individually so values with spaces survive the relaunch intact.
func commandLine(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = windows.EscapeArg(arg)
	}
	return strings.Join(quoted, " ")
}
