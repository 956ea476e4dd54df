package native

import "math"

// Caller dispatches a named engine function. The production implementation
// is *Library, which resolves symbols in the FMOD shared library at runtime;
// tests substitute an in-process fake so the wrapper layer can be exercised
// without the closed-source engine present.
//
// Arguments are passed in the engine's calling convention: handles and
// pointers as-is, integers widened to the register size, booleans as 0/1 and
// 32-bit floats as their IEEE-754 bit pattern (see FloatArg). A non-zero
// FMOD_RESULT is reported as a *Error. Invoke never partially applies: the
// engine either performed the operation or left its state unchanged.
type Caller interface {
	Invoke(symbol string, args ...uintptr) error
}

// FloatArg encodes a 32-bit float argument for Invoke.
func FloatArg(f float32) uintptr {
	return uintptr(math.Float32bits(f))
}

// BoolArg encodes a boolean argument for Invoke.
func BoolArg(b bool) uintptr {
	if b {
		return 1
	}
	return 0
}

// IntArg encodes a signed integer argument for Invoke. Negative values are
// sign-extended so the engine sees the same C int it would receive from a
// native caller; chain sentinels rely on this.
func IntArg(i int) uintptr {
	return uintptr(int64(i))
}
