// Copyright 2023 GreyXor. All rights reserved.
// Mount of this source code is governed by a MIT license that can be found
// at https://gitlab.com/greyxor/slogor/-/blob/main/LICENSE?ref_type=heads.

package ansi

// ANSI codes for text styling and formatting.
const (
	Reset           = "\033[0m"
	Bold            = "\033[1m"
	Faint           = "\033[2m"
	NormalIntensity = "\033[22m"
	// Foreground colors
	FgRed     = "\033[31m"
	FgGreen   = "\033[32m"
	FgYellow  = "\033[33m"
	FgBlue    = "\033[34m"
	FgMagenta = "\033[35m"
	FgCyan    = "\033[36m"
)

// Style appends s to buf, wrapped between code and Reset when enabled is true.
func Style(buf []byte, enabled bool, code, s string) []byte {
	if !enabled {
		return append(buf, s...)
	}
	buf = append(buf, code...)
	buf = append(buf, s...)
	return append(buf, Reset...)
}
