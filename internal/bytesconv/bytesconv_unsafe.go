//go:build !appengine

package bytesconv

import "unsafe"

// String convert without copy buf to a string value. Used to hand over a path assembled
// back to front in a freshly allocated buffer. Since Go strings are immutable, the bytes
// passed to String must NOT be modified afterwards.
func String(buf []byte) string {
	return unsafe.String(unsafe.SliceData(buf), len(buf))
}
