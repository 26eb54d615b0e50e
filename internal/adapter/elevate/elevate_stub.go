//go:build !windows

package elevate

import "fmt"

// IsElevated always reports true off Windows; elevation is only meaningful
// for the Windows tools this program drives.
func IsElevated() bool { return true }

func Relaunch() error {
	return fmt.Errorf("elevation only supported on Windows")
}
