//go:build appengine

package bytesconv

// String converts buf to a string value with memory copy.
func String(buf []byte) string {
	return string(buf)
}
