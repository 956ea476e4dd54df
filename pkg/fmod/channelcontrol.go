package fmod

import (
	"fmt"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// channelControl is the playback behavior shared by Channel and
// ChannelGroup. The engine exposes the same operations under two symbol
// families (FMOD_Channel_* and FMOD_ChannelGroup_*); the prefix selects
// which family a wrapper dispatches into.
type channelControl struct {
	object
	prefix string
}

func (cc *channelControl) sym(name string) string {
	return cc.prefix + "_" + name
}

// SetVolume sets the linear gain. 0 is silent, 1 is unchanged; negative
// values invert the signal.
func (cc *channelControl) SetVolume(volume float32) error {
	if err := cc.valid(); err != nil {
		return err
	}
	return cc.c.Invoke(cc.sym("SetVolume"), cc.arg(), native.FloatArg(volume))
}

// Volume returns the current linear gain.
func (cc *channelControl) Volume() (float32, error) {
	return cc.getFloat32(cc.sym("GetVolume"))
}

// SetPitch scales playback frequency. 0.5 is an octave down, 2 an octave up.
func (cc *channelControl) SetPitch(pitch float32) error {
	if err := cc.valid(); err != nil {
		return err
	}
	if pitch <= 0 {
		return fmt.Errorf("%w: pitch %v must be positive", ErrInvalidArgument, pitch)
	}
	return cc.c.Invoke(cc.sym("SetPitch"), cc.arg(), native.FloatArg(pitch))
}

// Pitch returns the current pitch scale.
func (cc *channelControl) Pitch() (float32, error) {
	return cc.getFloat32(cc.sym("GetPitch"))
}

// SetPan positions the signal between -1 (full left) and 1 (full right).
func (cc *channelControl) SetPan(pan float32) error {
	if err := cc.valid(); err != nil {
		return err
	}
	if pan < -1 || pan > 1 {
		return fmt.Errorf("%w: pan %v out of [-1, 1]", ErrInvalidArgument, pan)
	}
	return cc.c.Invoke(cc.sym("SetPan"), cc.arg(), native.FloatArg(pan))
}

// SetMute silences or restores output without touching the volume setting.
func (cc *channelControl) SetMute(mute bool) error {
	if err := cc.valid(); err != nil {
		return err
	}
	return cc.c.Invoke(cc.sym("SetMute"), cc.arg(), native.BoolArg(mute))
}

// Mute reports whether output is muted.
func (cc *channelControl) Mute() (bool, error) {
	return cc.getBool(cc.sym("GetMute"))
}

// SetPaused suspends or resumes playback.
func (cc *channelControl) SetPaused(paused bool) error {
	if err := cc.valid(); err != nil {
		return err
	}
	return cc.c.Invoke(cc.sym("SetPaused"), cc.arg(), native.BoolArg(paused))
}

// Paused reports whether playback is suspended.
func (cc *channelControl) Paused() (bool, error) {
	return cc.getBool(cc.sym("GetPaused"))
}

// Stop ends playback. The engine is free to reuse the underlying channel
// afterwards; further calls on this wrapper may fail with a stolen or
// invalid handle status.
func (cc *channelControl) Stop() error {
	if err := cc.valid(); err != nil {
		return err
	}
	return cc.c.Invoke(cc.sym("Stop"), cc.arg())
}

// IsPlaying reports whether the engine is still mixing this source.
func (cc *channelControl) IsPlaying() (bool, error) {
	return cc.getBool(cc.sym("IsPlaying"))
}

// Set3DAttributes updates the 3D position and velocity used by the mixer's
// positional audio.
func (cc *channelControl) Set3DAttributes(pos, vel Vector) error {
	if err := cc.valid(); err != nil {
		return err
	}
	pbuf, vbuf := vectorBuf(pos), vectorBuf(vel)
	err := cc.c.Invoke(cc.sym("Set3DAttributes"), cc.arg(), pbuf.Ptr(), vbuf.Ptr())
	native.Keep(pbuf, vbuf)
	return err
}

// DSPs returns the unit chain the engine mixes this signal through. The
// chain is a live view: the mixer inserts built-in units (such as the
// fader) on its own, so the count can change between calls without any
// action from this process.
func (cc *channelControl) DSPs() Chain[*DSP] {
	return newChain[*DSP](dspChainOps{cc})
}

// dspChainOps binds the generic chain adapter to one channel or group.
type dspChainOps struct {
	cc *channelControl
}

func (o dspChainOps) count() (int, error) {
	n, err := o.cc.getInt32(o.cc.sym("GetNumDSPs"))
	return int(n), err
}

func (o dspChainOps) at(index int) (*DSP, error) {
	if err := o.cc.valid(); err != nil {
		return nil, err
	}
	buf := native.NewBuffer(8)
	if err := o.cc.c.Invoke(o.cc.sym("GetDSP"), o.cc.arg(), native.IntArg(index), buf.Ptr()); err != nil {
		return nil, err
	}
	h, err := buf.Uintptr()
	if err != nil {
		return nil, err
	}
	return &DSP{object{c: o.cc.c, h: Handle(h)}}, nil
}

func (o dspChainOps) insert(pos Position, d *DSP) error {
	if d == nil {
		return fmt.Errorf("%w: nil DSP", ErrInvalidArgument)
	}
	if err := o.cc.valid(); err != nil {
		return err
	}
	if err := d.valid(); err != nil {
		return err
	}
	return o.cc.c.Invoke(o.cc.sym("AddDSP"), o.cc.arg(), native.IntArg(int(pos)), d.arg())
}

func (o dspChainOps) unlink(d *DSP) error {
	if d == nil {
		// Not a linkable element; unlinking nothing is not a failure.
		return nil
	}
	if err := o.cc.valid(); err != nil {
		return err
	}
	if err := d.valid(); err != nil {
		return err
	}
	return o.cc.c.Invoke(o.cc.sym("RemoveDSP"), o.cc.arg(), d.arg())
}

func (o dspChainOps) locate(d *DSP) (int, error) {
	if d == nil {
		return 0, fmt.Errorf("%w: nil DSP", ErrInvalidArgument)
	}
	if err := o.cc.valid(); err != nil {
		return 0, err
	}
	if err := d.valid(); err != nil {
		return 0, err
	}
	buf := native.NewBuffer(4)
	if err := o.cc.c.Invoke(o.cc.sym("GetDSPIndex"), o.cc.arg(), d.arg(), buf.Ptr()); err != nil {
		return 0, err
	}
	n, err := buf.Int32()
	return int(n), err
}

func (o dspChainOps) relocate(d *DSP, pos Position) error {
	if d == nil {
		return fmt.Errorf("%w: nil DSP", ErrInvalidArgument)
	}
	if err := o.cc.valid(); err != nil {
		return err
	}
	if err := d.valid(); err != nil {
		return err
	}
	return o.cc.c.Invoke(o.cc.sym("SetDSPIndex"), o.cc.arg(), d.arg(), native.IntArg(int(pos)))
}
