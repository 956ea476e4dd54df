package fmod

import "github.com/fmodgo/fmodgo/pkg/native"

// Handle is the opaque identifier for an engine-owned resource. The wrapper
// never owns the resource's memory, only the identifier; once the owning
// System is closed or the resource released, the identifier stops being
// meaningful and must not be used.
//
// Handle is the identity of every wrapper object: two wrappers holding the
// same Handle refer to the same engine resource, compare equal through the
// types' Equal methods, and may be used interchangeably as map keys via
// Handle().
type Handle uintptr

// object couples a handle with the call surface it was obtained from.
type object struct {
	c native.Caller
	h Handle
}

// Handle returns the wrapped engine identifier.
func (o *object) Handle() Handle { return o.h }

func (o *object) arg() uintptr { return uintptr(o.h) }

func (o *object) valid() error {
	if o.h == 0 {
		return ErrReleased
	}
	return nil
}

func (o *object) invalidate() { o.h = 0 }

// getFloat32 fetches a single float output, the most common getter shape.
func (o *object) getFloat32(symbol string) (float32, error) {
	if err := o.valid(); err != nil {
		return 0, err
	}
	buf := native.NewBuffer(4)
	if err := o.c.Invoke(symbol, o.arg(), buf.Ptr()); err != nil {
		return 0, err
	}
	return buf.Float32()
}

// getInt32 fetches a single int output.
func (o *object) getInt32(symbol string) (int32, error) {
	if err := o.valid(); err != nil {
		return 0, err
	}
	buf := native.NewBuffer(4)
	if err := o.c.Invoke(symbol, o.arg(), buf.Ptr()); err != nil {
		return 0, err
	}
	return buf.Int32()
}

// getBool fetches a single FMOD_BOOL output.
func (o *object) getBool(symbol string) (bool, error) {
	v, err := o.getInt32(symbol)
	return v != 0, err
}

// getHandle fetches a single handle output.
func (o *object) getHandle(symbol string) (Handle, error) {
	if err := o.valid(); err != nil {
		return 0, err
	}
	buf := native.NewBuffer(8)
	if err := o.c.Invoke(symbol, o.arg(), buf.Ptr()); err != nil {
		return 0, err
	}
	h, err := buf.Uintptr()
	return Handle(h), err
}

// pathArg builds a NUL-terminated byte buffer for a string argument. The
// returned slice must stay reachable until the native call returns.
func pathArg(s string) []byte {
	return append([]byte(s), 0)
}
