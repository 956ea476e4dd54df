package enginetest

import (
	"math"
	"unsafe"
)

// The engine writes its outputs straight into caller-supplied memory, so
// these helpers do the same through the uintptrs the wrapper passed in.
// Test-only code: both sides of the "boundary" live in this process.

func putUint32(p uintptr, v uint32) {
	*(*uint32)(unsafe.Pointer(p)) = v
}

func putInt32(p uintptr, v int32) {
	putUint32(p, uint32(v))
}

func putFloat32(p uintptr, v float32) {
	putUint32(p, math.Float32bits(v))
}

func putHandle(p uintptr, h uintptr) {
	*(*uint64)(unsafe.Pointer(p)) = uint64(h)
}

func putBool(p uintptr, b bool) {
	if b {
		putInt32(p, 1)
	} else {
		putInt32(p, 0)
	}
}

// argInt recovers a possibly negative C int argument.
func argInt(a uintptr) int {
	return int(int64(a))
}

// argFloat recovers a float argument passed as its bit pattern.
func argFloat(a uintptr) float32 {
	return math.Float32frombits(uint32(a))
}

func argBool(a uintptr) bool {
	return a != 0
}

// argString reads a NUL-terminated string argument.
func argString(p uintptr) string {
	if p == 0 {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Pointer(p + uintptr(n))) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
}

// putString writes a fixed-width NUL-padded string field, truncating to fit.
func putString(p uintptr, width int, s string) {
	if p == 0 || width <= 0 {
		return
	}
	field := unsafe.Slice((*byte)(unsafe.Pointer(p)), width)
	if len(s) > width-1 {
		s = s[:width-1]
	}
	n := copy(field, s)
	for i := n; i < width; i++ {
		field[i] = 0
	}
}

func putBytes(p uintptr, b []byte) {
	if p == 0 || len(b) == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(p)), len(b)), b)
}

func bytesPtr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

func takeBytes(p uintptr, n int) []byte {
	if p == 0 || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(unsafe.Pointer(p)), n))
	return out
}
