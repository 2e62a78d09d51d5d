//go:build !windows

package ansi

import "os"

// EnableVirtualTerminal is a no-op outside of Windows, where terminals interpret ANSI sequences natively.
func EnableVirtualTerminal(_ *os.File) error {
	return nil
}
