package native

import "unsafe"

// CString copies a NUL-terminated UTF-8 string out of engine-owned memory.
// The engine retains ownership of the original bytes; the returned string is
// a Go copy that stays valid after the engine frees or reuses them.
func CString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// CopyBytes copies n bytes out of engine-owned memory.
func CopyBytes(p uintptr, n int) []byte {
	if p == 0 || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
	return out
}
