package fmod

import (
	"fmt"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// ChannelGroup is a mix bus: channels and nested groups route through it,
// and its volume, DSP chain and 3D attributes apply to everything below it.
type ChannelGroup struct {
	channelControl
}

func newChannelGroup(c native.Caller, h Handle) *ChannelGroup {
	return &ChannelGroup{channelControl{object: object{c: c, h: h}, prefix: "FMOD_ChannelGroup"}}
}

// Equal reports whether both wrappers refer to the same engine group.
func (g *ChannelGroup) Equal(other *ChannelGroup) bool {
	return other != nil && g.h == other.h
}

// Name returns the name the group was created with.
func (g *ChannelGroup) Name() (string, error) {
	if err := g.valid(); err != nil {
		return "", err
	}
	buf := native.NewBuffer(256)
	if err := g.c.Invoke("FMOD_ChannelGroup_GetName", g.arg(), buf.Ptr(), native.IntArg(buf.Len())); err != nil {
		return "", err
	}
	return buf.String(buf.Len())
}

// AddGroup links child as a subgroup of this group.
func (g *ChannelGroup) AddGroup(child *ChannelGroup) error {
	if child == nil {
		return fmt.Errorf("%w: nil channel group", ErrInvalidArgument)
	}
	if err := g.valid(); err != nil {
		return err
	}
	if err := child.valid(); err != nil {
		return err
	}
	return g.c.Invoke("FMOD_ChannelGroup_AddGroup", g.arg(), child.arg(), native.BoolArg(true), 0)
}

// GroupCount reports the number of directly nested subgroups.
func (g *ChannelGroup) GroupCount() (int, error) {
	n, err := g.getInt32("FMOD_ChannelGroup_GetNumGroups")
	return int(n), err
}

// Group returns the subgroup at index, or absence when index is at or
// beyond the live count.
func (g *ChannelGroup) Group(index int) (*ChannelGroup, bool, error) {
	if index < 0 {
		return nil, false, fmt.Errorf("%w: negative index %d", ErrInvalidArgument, index)
	}
	n, err := g.GroupCount()
	if err != nil {
		return nil, false, err
	}
	if index >= n {
		return nil, false, nil
	}
	if err := g.valid(); err != nil {
		return nil, false, err
	}
	buf := native.NewBuffer(8)
	if err := g.c.Invoke("FMOD_ChannelGroup_GetGroup", g.arg(), native.IntArg(index), buf.Ptr()); err != nil {
		return nil, false, err
	}
	h, err := buf.Uintptr()
	if err != nil {
		return nil, false, err
	}
	return newChannelGroup(g.c, Handle(h)), true, nil
}

// Release frees the group inside the engine and invalidates this wrapper.
// Channels routed through it fall back to the master group.
func (g *ChannelGroup) Release() error {
	if err := g.valid(); err != nil {
		return err
	}
	if err := g.c.Invoke("FMOD_ChannelGroup_Release", g.arg()); err != nil {
		return err
	}
	g.invalidate()
	return nil
}
