// Package fmod wraps the FMOD Core API, a closed-source real-time audio
// engine, behind Go object wrappers. Every operation is a synchronous call
// across the native boundary: the wrapper marshals arguments, invokes the
// engine function by symbol name, decodes any output buffers and wraps
// returned opaque handles. All mixing, DSP processing, 3D math and resource
// allocation happen inside the engine; this package owns only handles and
// marshaling.
//
// The engine mixes on its own background thread, asynchronously from every
// call made here. The wrappers add no internal synchronization: concurrent
// use of the same object from multiple goroutines is the caller's
// responsibility. System.LockDSP/UnlockDSP (or the scoped
// System.WithLockedDSP) suspend the mixer thread when a consistent view of
// mutable engine state is required.
//
// Engine failures surface as *native.Error carrying the FMOD_RESULT code.
// Values rejected before any boundary crossing wrap ErrInvalidArgument.
// Operations on a wrapper whose handle was released wrap ErrReleased. That
// detection is best effort, since the wrapper cannot observe engine-side
// invalidation directly.
package fmod
