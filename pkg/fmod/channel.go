package fmod

import (
	"fmt"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// TimeUnit selects how positions and lengths are measured (FMOD_TIMEUNIT).
type TimeUnit uint32

const (
	TimeUnitMS       TimeUnit = 0x1
	TimeUnitPCM      TimeUnit = 0x2
	TimeUnitPCMBytes TimeUnit = 0x4
	TimeUnitRawBytes TimeUnit = 0x8
)

// Channel is a playing (or paused) instance of a Sound. Channels are
// allocated and reclaimed by the engine: once playback stops the engine may
// hand the same physical channel to another sound, after which calls here
// fail with a stolen/invalid handle status.
type Channel struct {
	channelControl
}

func newChannel(c native.Caller, h Handle) *Channel {
	return &Channel{channelControl{object: object{c: c, h: h}, prefix: "FMOD_Channel"}}
}

// Equal reports whether both wrappers refer to the same engine channel.
func (ch *Channel) Equal(other *Channel) bool {
	return other != nil && ch.h == other.h
}

// SetPosition seeks playback to pos, measured in unit.
func (ch *Channel) SetPosition(pos uint32, unit TimeUnit) error {
	if err := ch.valid(); err != nil {
		return err
	}
	return ch.c.Invoke("FMOD_Channel_SetPosition", ch.arg(), uintptr(pos), uintptr(unit))
}

// Position returns the playback position, measured in unit.
func (ch *Channel) Position(unit TimeUnit) (uint32, error) {
	if err := ch.valid(); err != nil {
		return 0, err
	}
	buf := native.NewBuffer(4)
	if err := ch.c.Invoke("FMOD_Channel_GetPosition", ch.arg(), buf.Ptr(), uintptr(unit)); err != nil {
		return 0, err
	}
	return buf.Uint32()
}

// SetFrequency overrides the playback rate in Hz.
func (ch *Channel) SetFrequency(hz float32) error {
	if err := ch.valid(); err != nil {
		return err
	}
	if hz <= 0 {
		return fmt.Errorf("%w: frequency %v must be positive", ErrInvalidArgument, hz)
	}
	return ch.c.Invoke("FMOD_Channel_SetFrequency", ch.arg(), native.FloatArg(hz))
}

// Frequency returns the current playback rate in Hz.
func (ch *Channel) Frequency() (float32, error) {
	return ch.getFloat32("FMOD_Channel_GetFrequency")
}

// CurrentSound returns the sound this channel is playing.
func (ch *Channel) CurrentSound() (*Sound, error) {
	h, err := ch.getHandle("FMOD_Channel_GetCurrentSound")
	if err != nil {
		return nil, err
	}
	return &Sound{object{c: ch.c, h: h}}, nil
}

// SetChannelGroup moves this channel under the given group's mix bus.
func (ch *Channel) SetChannelGroup(g *ChannelGroup) error {
	if g == nil {
		return fmt.Errorf("%w: nil channel group", ErrInvalidArgument)
	}
	if err := ch.valid(); err != nil {
		return err
	}
	if err := g.valid(); err != nil {
		return err
	}
	return ch.c.Invoke("FMOD_Channel_SetChannelGroup", ch.arg(), g.arg())
}

// ChannelGroup returns the group this channel currently mixes into.
func (ch *Channel) ChannelGroup() (*ChannelGroup, error) {
	h, err := ch.getHandle("FMOD_Channel_GetChannelGroup")
	if err != nil {
		return nil, err
	}
	return newChannelGroup(ch.c, h), nil
}
