package native

import (
	"encoding/binary"
	"errors"
	"math"
	"runtime"
	"unsafe"
)

// ErrShortBuffer is returned when a decode would read past the end of a
// buffer. Decodes fail fast rather than returning truncated values.
var ErrShortBuffer = errors.New("native: buffer too small")

// Buffer is a fixed-capacity byte buffer in the engine's boundary layout:
// little-endian numerics, fixed-width NUL-padded UTF-8 string fields.
// It is the only place in the binding that touches raw byte layout; wrapper
// code encodes a record, passes Ptr across the boundary, and decodes the
// result back into plain structs.
type Buffer struct {
	data []byte
	off  int
}

// NewBuffer allocates a zeroed buffer of the given size.
func NewBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// Wrap makes a Buffer over an existing byte slice without copying.
func Wrap(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Ptr returns the address of the buffer's backing array, for passing as an
// output or struct argument across the boundary. The caller must keep the
// Buffer reachable for the duration of the native call; a buffer whose only
// use after Ptr is decoding the result is reachable already, any other
// buffer needs a Keep call after the invocation.
func (b *Buffer) Ptr() uintptr {
	if len(b.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b.data[0]))
}

// Keep keeps the given buffers reachable up to this point. Place it directly
// after a native call whose only use of a buffer was the Ptr value passed as
// an argument. uintptr arguments do not root the backing array, so without
// an anchor on the Go side the collector may reclaim it while the engine is
// still reading or writing the memory.
func Keep(bufs ...*Buffer) {
	for _, b := range bufs {
		runtime.KeepAlive(b)
	}
}

// Bytes returns the underlying storage.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the buffer's capacity in bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Rewind resets the read/write cursor to the start of the buffer.
func (b *Buffer) Rewind() { b.off = 0 }

// Skip advances the cursor without reading.
func (b *Buffer) Skip(n int) error {
	if b.off+n > len(b.data) {
		return ErrShortBuffer
	}
	b.off += n
	return nil
}

func (b *Buffer) room(n int) ([]byte, error) {
	if n < 0 || b.off+n > len(b.data) {
		return nil, ErrShortBuffer
	}
	s := b.data[b.off : b.off+n]
	b.off += n
	return s, nil
}

// PutUint32 encodes v at the cursor.
func (b *Buffer) PutUint32(v uint32) error {
	s, err := b.room(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(s, v)
	return nil
}

// PutInt32 encodes v at the cursor.
func (b *Buffer) PutInt32(v int32) error { return b.PutUint32(uint32(v)) }

// PutUint64 encodes v at the cursor.
func (b *Buffer) PutUint64(v uint64) error {
	s, err := b.room(8)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(s, v)
	return nil
}

// PutUintptr encodes a pointer-sized value at the cursor.
func (b *Buffer) PutUintptr(v uintptr) error { return b.PutUint64(uint64(v)) }

// PutFloat32 encodes v at the cursor.
func (b *Buffer) PutFloat32(v float32) error { return b.PutUint32(math.Float32bits(v)) }

// PutFloat64 encodes v at the cursor.
func (b *Buffer) PutFloat64(v float64) error { return b.PutUint64(math.Float64bits(v)) }

// PutBytes copies raw bytes at the cursor.
func (b *Buffer) PutBytes(p []byte) error {
	s, err := b.room(len(p))
	if err != nil {
		return err
	}
	copy(s, p)
	return nil
}

// PutString encodes s into a fixed-width field of the given size. The value
// is truncated (never overrun) to leave room for at least one terminating
// NUL; the remainder of the field is NUL padding. A field narrower than the
// terminator cannot hold any value, so width < 1 fails as a short buffer.
func (b *Buffer) PutString(s string, width int) error {
	if width < 1 {
		return ErrShortBuffer
	}
	field, err := b.room(width)
	if err != nil {
		return err
	}
	if len(s) > width-1 {
		s = s[:width-1]
	}
	n := copy(field, s)
	for i := n; i < width; i++ {
		field[i] = 0
	}
	return nil
}

// Uint32 decodes the next 4 bytes.
func (b *Buffer) Uint32() (uint32, error) {
	s, err := b.room(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(s), nil
}

// Int32 decodes the next 4 bytes as a signed value.
func (b *Buffer) Int32() (int32, error) {
	v, err := b.Uint32()
	return int32(v), err
}

// Uint64 decodes the next 8 bytes.
func (b *Buffer) Uint64() (uint64, error) {
	s, err := b.room(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(s), nil
}

// Uintptr decodes the next pointer-sized value, typically an engine handle.
func (b *Buffer) Uintptr() (uintptr, error) {
	v, err := b.Uint64()
	return uintptr(v), err
}

// Float32 decodes the next 4 bytes.
func (b *Buffer) Float32() (float32, error) {
	v, err := b.Uint32()
	return math.Float32frombits(v), err
}

// Float64 decodes the next 8 bytes.
func (b *Buffer) Float64() (float64, error) {
	v, err := b.Uint64()
	return math.Float64frombits(v), err
}

// TakeBytes copies the next n raw bytes out of the buffer.
func (b *Buffer) TakeBytes(n int) ([]byte, error) {
	s, err := b.room(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, s)
	return out, nil
}

// String decodes a fixed-width NUL-padded field, returning the bytes up to
// the first NUL.
func (b *Buffer) String(width int) (string, error) {
	s, err := b.room(width)
	if err != nil {
		return "", err
	}
	for i, c := range s {
		if c == 0 {
			return string(s[:i]), nil
		}
	}
	return string(s), nil
}
