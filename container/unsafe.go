package container

import "unsafe"

// bytesToString views b as a string without copying. Used by AsStr so a
// borrowed string slice never copies when it doesn't have to: the returned
// string aliases buf and must not outlive it.
func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
