package fmod

import "errors"

// ErrInvalidArgument reports a value rejected locally, before any native
// call was attempted.
var ErrInvalidArgument = errors.New("fmod: invalid argument")

// ErrReleased reports an operation on a wrapper whose handle was released.
// Detection is best effort: the wrapper can only track releases it performed
// itself, not engine-side invalidation.
var ErrReleased = errors.New("fmod: handle has been released")
