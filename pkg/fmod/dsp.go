package fmod

import (
	"fmt"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// DSPType identifies a built-in effect unit (FMOD_DSP_TYPE).
type DSPType int32

const (
	DSPTypeUnknown DSPType = iota
	DSPTypeMixer
	DSPTypeOscillator
	DSPTypeLowpass
	DSPTypeITLowpass
	DSPTypeHighpass
	DSPTypeEcho
	DSPTypeFader
	DSPTypeFlange
	DSPTypeDistortion
	DSPTypeNormalize
	DSPTypeLimiter
	DSPTypeParamEQ
	DSPTypePitchShift
	DSPTypeChorus
	DSPTypeVSTPlugin
	DSPTypeWinampPlugin
	DSPTypeITEcho
	DSPTypeCompressor
	DSPTypeSFXReverb
	DSPTypeLowpassSimple
	DSPTypeDelay
	DSPTypeTremolo
	DSPTypeLADSPAPlugin
	DSPTypeSend
	DSPTypeReturn
	DSPTypeHighpassSimple
	DSPTypePan
	DSPTypeThreeEQ
	DSPTypeFFT
	DSPTypeLoudnessMeter
	DSPTypeEnvelopeFollower
	DSPTypeConvolutionReverb
	DSPTypeChannelMix
	DSPTypeTransceiver
	DSPTypeObjectPan
	DSPTypeMultibandEQ
)

// DSP is an effect unit with its own engine identity. A unit can be linked
// into several chains at once (shared ownership); unlinking it from one
// chain does not destroy it or detach it elsewhere.
type DSP struct {
	object
}

// Equal reports whether both wrappers refer to the same engine unit.
// Identity follows the underlying handle, not the wrapper instance.
func (d *DSP) Equal(other *DSP) bool {
	return other != nil && d.h == other.h
}

// Type returns the unit's effect type.
func (d *DSP) Type() (DSPType, error) {
	v, err := d.getInt32("FMOD_DSP_GetType")
	return DSPType(v), err
}

// SetActive starts or stops the unit processing inside the mixer.
func (d *DSP) SetActive(active bool) error {
	if err := d.valid(); err != nil {
		return err
	}
	return d.c.Invoke("FMOD_DSP_SetActive", d.arg(), native.BoolArg(active))
}

// Active reports whether the unit is processing.
func (d *DSP) Active() (bool, error) {
	return d.getBool("FMOD_DSP_GetActive")
}

// SetBypass passes the signal through the unit unprocessed.
func (d *DSP) SetBypass(bypass bool) error {
	if err := d.valid(); err != nil {
		return err
	}
	return d.c.Invoke("FMOD_DSP_SetBypass", d.arg(), native.BoolArg(bypass))
}

// Bypass reports whether the unit is bypassed.
func (d *DSP) Bypass() (bool, error) {
	return d.getBool("FMOD_DSP_GetBypass")
}

// SetParameterFloat sets a float parameter by its index in the unit's
// parameter list.
func (d *DSP) SetParameterFloat(index int, value float32) error {
	if index < 0 {
		return fmt.Errorf("%w: negative parameter index %d", ErrInvalidArgument, index)
	}
	if err := d.valid(); err != nil {
		return err
	}
	return d.c.Invoke("FMOD_DSP_SetParameterFloat", d.arg(), native.IntArg(index), native.FloatArg(value))
}

// ParameterFloat reads a float parameter by index.
func (d *DSP) ParameterFloat(index int) (float32, error) {
	if index < 0 {
		return 0, fmt.Errorf("%w: negative parameter index %d", ErrInvalidArgument, index)
	}
	if err := d.valid(); err != nil {
		return 0, err
	}
	buf := native.NewBuffer(4)
	if err := d.c.Invoke("FMOD_DSP_GetParameterFloat", d.arg(), native.IntArg(index), buf.Ptr(), 0, 0); err != nil {
		return 0, err
	}
	return buf.Float32()
}

// Release frees the unit inside the engine and invalidates this wrapper.
// The engine refuses to release a unit that is still linked into a chain.
func (d *DSP) Release() error {
	if err := d.valid(); err != nil {
		return err
	}
	if err := d.c.Invoke("FMOD_DSP_Release", d.arg()); err != nil {
		return err
	}
	d.invalidate()
	return nil
}
