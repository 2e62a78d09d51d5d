// Copyright 2023 GreyXor. All rights reserved.
// Mount of this source code is governed by a MIT license that can be found
// at https://gitlab.com/greyxor/slogor/-/blob/main/LICENSE?ref_type=heads.

package ansi

import (
	"os"

	"golang.org/x/sys/windows"
)

// EnableVirtualTerminal switches the console attached to f into a mode that interprets ANSI sequences.
// See https://learn.microsoft.com/en-us/windows/console/setconsolemode.
func EnableVirtualTerminal(f *os.File) error {
	h := windows.Handle(f.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return err
	}

	mode |= windows.ENABLE_PROCESSED_OUTPUT | windows.ENABLE_WRAP_AT_EOL_OUTPUT | windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	return windows.SetConsoleMode(h, mode)
}
