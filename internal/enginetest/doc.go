// Package enginetest is an in-process stand-in for the native FMOD engine.
// It implements native.Caller with a symbol-dispatch table over plain Go
// state, so the wrapper layer can be exercised without the closed-source
// shared library present. It models the semantics the wrappers depend on:
// handle tables, DSP chain insertion with sentinel indices, tag tables,
// geometry polygon storage, the mixer lock, and codec probing of real audio
// files for sound creation.
package enginetest
