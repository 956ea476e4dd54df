package native

import (
	"bytes"
	"errors"
	"testing"
)

func TestBufferLittleEndianLayout(t *testing.T) {
	b := NewBuffer(8)
	if err := b.PutUint32(0x01020304); err != nil {
		t.Fatalf("PutUint32 failed: %v", err)
	}
	if err := b.PutFloat32(1.0); err != nil {
		t.Fatalf("PutFloat32 failed: %v", err)
	}
	want := []byte{0x04, 0x03, 0x02, 0x01, 0x00, 0x00, 0x80, 0x3f}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Expected bytes %x, got %x", want, b.Bytes())
	}
}

func TestBufferRoundTrip(t *testing.T) {
	b := NewBuffer(24)
	if err := b.PutInt32(-42); err != nil {
		t.Fatalf("PutInt32 failed: %v", err)
	}
	if err := b.PutFloat32(3.5); err != nil {
		t.Fatalf("PutFloat32 failed: %v", err)
	}
	if err := b.PutUint64(1 << 40); err != nil {
		t.Fatalf("PutUint64 failed: %v", err)
	}
	if err := b.PutUintptr(0xdeadbeef); err != nil {
		t.Fatalf("PutUintptr failed: %v", err)
	}

	b.Rewind()
	i, err := b.Int32()
	if err != nil || i != -42 {
		t.Errorf("Expected -42, got %d (err %v)", i, err)
	}
	f, err := b.Float32()
	if err != nil || f != 3.5 {
		t.Errorf("Expected 3.5, got %v (err %v)", f, err)
	}
	u, err := b.Uint64()
	if err != nil || u != 1<<40 {
		t.Errorf("Expected %d, got %d (err %v)", uint64(1)<<40, u, err)
	}
	p, err := b.Uintptr()
	if err != nil || p != 0xdeadbeef {
		t.Errorf("Expected 0xdeadbeef, got %#x (err %v)", p, err)
	}
}

func TestBufferShortReadFailsFast(t *testing.T) {
	b := NewBuffer(6)
	if _, err := b.Uint32(); err != nil {
		t.Fatalf("First read failed: %v", err)
	}
	// Two bytes remain; a partial value must not be produced.
	if _, err := b.Uint32(); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Expected ErrShortBuffer, got %v", err)
	}
}

func TestBufferShortWriteFailsFast(t *testing.T) {
	b := NewBuffer(3)
	if err := b.PutUint32(1); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Expected ErrShortBuffer, got %v", err)
	}
}

func TestPutStringTruncatesAndPads(t *testing.T) {
	b := NewBuffer(8)
	if err := b.PutString("longer than eight", 8); err != nil {
		t.Fatalf("PutString failed: %v", err)
	}
	want := []byte{'l', 'o', 'n', 'g', 'e', 'r', ' ', 0}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Expected field %q, got %q", want, b.Bytes())
	}

	b.Rewind()
	s, err := b.String(8)
	if err != nil {
		t.Fatalf("String failed: %v", err)
	}
	if s != "longer " {
		t.Errorf("Expected %q, got %q", "longer ", s)
	}
}

func TestPutStringPadsShortValue(t *testing.T) {
	b := NewBuffer(8)
	b.data[7] = 0xff // stale byte that padding must clear
	b.off = 0
	if err := b.PutString("hi", 8); err != nil {
		t.Fatalf("PutString failed: %v", err)
	}
	want := []byte{'h', 'i', 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Expected field %q, got %q", want, b.Bytes())
	}
}

func TestPutStringRejectsNonPositiveWidth(t *testing.T) {
	b := NewBuffer(8)
	if err := b.PutString("x", 0); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Expected ErrShortBuffer for width 0, got %v", err)
	}
	if err := b.PutString("x", -4); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Expected ErrShortBuffer for width -4, got %v", err)
	}
	// The cursor must be untouched by the rejected writes.
	if err := b.PutString("ok", 8); err != nil {
		t.Fatalf("PutString after rejected widths failed: %v", err)
	}
}

func TestStringRejectsNegativeWidth(t *testing.T) {
	b := Wrap([]byte{'a', 0})
	if _, err := b.String(-1); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Expected ErrShortBuffer, got %v", err)
	}
}

func TestStringStopsAtFirstNUL(t *testing.T) {
	b := Wrap([]byte{'a', 'b', 0, 'c', 0, 0})
	s, err := b.String(6)
	if err != nil {
		t.Fatalf("String failed: %v", err)
	}
	if s != "ab" {
		t.Errorf("Expected %q, got %q", "ab", s)
	}
}

func TestStringShortField(t *testing.T) {
	b := Wrap([]byte{'a', 'b'})
	if _, err := b.String(4); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Expected ErrShortBuffer, got %v", err)
	}
}

func TestBufferSkip(t *testing.T) {
	b := Wrap([]byte{1, 0, 0, 0, 2, 0, 0, 0})
	if err := b.Skip(4); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	v, err := b.Uint32()
	if err != nil || v != 2 {
		t.Errorf("Expected 2 after skip, got %d (err %v)", v, err)
	}
	if err := b.Skip(1); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Expected ErrShortBuffer skipping past end, got %v", err)
	}
}

func TestEmptyBufferPtr(t *testing.T) {
	if p := NewBuffer(0).Ptr(); p != 0 {
		t.Errorf("Expected zero pointer for empty buffer, got %#x", p)
	}
}

func BenchmarkBufferEncodeVector(b *testing.B) {
	buf := NewBuffer(12)
	for i := 0; i < b.N; i++ {
		buf.Rewind()
		buf.PutFloat32(1)
		buf.PutFloat32(2)
		buf.PutFloat32(3)
	}
}
