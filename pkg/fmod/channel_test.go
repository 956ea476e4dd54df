package fmod_test

import (
	"errors"
	"testing"

	"github.com/fmodgo/fmodgo/internal/enginetest"
	"github.com/fmodgo/fmodgo/pkg/fmod"
	"github.com/fmodgo/fmodgo/pkg/native"
)

func playFixture(t *testing.T, e *enginetest.Engine) (*fmod.System, *fmod.Sound, *fmod.Channel) {
	t.Helper()
	path := writeWAV(t, "loop.wav", 8000, 1600)
	sys := newSystem(t, e)
	snd, err := sys.CreateSound(path, fmod.ModeDefault)
	if err != nil {
		t.Fatalf("CreateSound failed: %v", err)
	}
	ch, err := sys.PlaySound(snd, nil, false)
	if err != nil {
		t.Fatalf("PlaySound failed: %v", err)
	}
	return sys, snd, ch
}

func TestPlaySoundValidatesSound(t *testing.T) {
	sys := newSystem(t, enginetest.New())
	if _, err := sys.PlaySound(nil, nil, false); !errors.Is(err, fmod.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for nil sound, got %v", err)
	}
}

func TestChannelPlaybackState(t *testing.T) {
	_, _, ch := playFixture(t, enginetest.New())

	playing, err := ch.IsPlaying()
	if err != nil || !playing {
		t.Fatalf("Expected channel to be playing, got %v (err %v)", playing, err)
	}
	if err := ch.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if playing, _ = ch.IsPlaying(); playing {
		t.Errorf("Expected channel to stop playing")
	}
}

func TestPlaySoundPaused(t *testing.T) {
	path := writeWAV(t, "pause.wav", 8000, 80)
	sys := newSystem(t, enginetest.New())
	snd, err := sys.CreateSound(path, fmod.ModeDefault)
	if err != nil {
		t.Fatalf("CreateSound failed: %v", err)
	}
	ch, err := sys.PlaySound(snd, nil, true)
	if err != nil {
		t.Fatalf("PlaySound failed: %v", err)
	}
	paused, err := ch.Paused()
	if err != nil || !paused {
		t.Errorf("Expected channel to start paused, got %v (err %v)", paused, err)
	}
	if err := ch.SetPaused(false); err != nil {
		t.Fatalf("SetPaused failed: %v", err)
	}
	if paused, _ = ch.Paused(); paused {
		t.Errorf("Expected channel to resume")
	}
}

func TestChannelPositionUnits(t *testing.T) {
	_, _, ch := playFixture(t, enginetest.New())

	if err := ch.SetPosition(100, fmod.TimeUnitMS); err != nil {
		t.Fatalf("SetPosition failed: %v", err)
	}
	ms, err := ch.Position(fmod.TimeUnitMS)
	if err != nil || ms != 100 {
		t.Errorf("Expected 100 ms, got %d (err %v)", ms, err)
	}
	pcm, err := ch.Position(fmod.TimeUnitPCM)
	if err != nil || pcm != 800 {
		t.Errorf("Expected 800 frames at 8 kHz, got %d (err %v)", pcm, err)
	}

	perr := ch.SetPosition(10_000, fmod.TimeUnitMS)
	var nerr *native.Error
	if !errors.As(perr, &nerr) || nerr.Code != native.ERR_INVALID_POSITION {
		t.Errorf("Expected ERR_INVALID_POSITION past the end, got %v", perr)
	}
}

func TestChannelFrequency(t *testing.T) {
	_, _, ch := playFixture(t, enginetest.New())

	hz, err := ch.Frequency()
	if err != nil || hz != 8000 {
		t.Fatalf("Expected sound's rate as default frequency, got %v (err %v)", hz, err)
	}
	if err := ch.SetFrequency(0); !errors.Is(err, fmod.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero frequency, got %v", err)
	}
	if err := ch.SetFrequency(12000); err != nil {
		t.Fatalf("SetFrequency failed: %v", err)
	}
	if hz, _ = ch.Frequency(); hz != 12000 {
		t.Errorf("Expected 12000, got %v", hz)
	}
}

func TestChannelCurrentSound(t *testing.T) {
	_, snd, ch := playFixture(t, enginetest.New())
	got, err := ch.CurrentSound()
	if err != nil {
		t.Fatalf("CurrentSound failed: %v", err)
	}
	if !got.Equal(snd) {
		t.Errorf("Expected the played sound, got handle %v", got.Handle())
	}
}

func TestChannelRoutesToMasterByDefault(t *testing.T) {
	sys, _, ch := playFixture(t, enginetest.New())
	master, err := sys.MasterChannelGroup()
	if err != nil {
		t.Fatalf("MasterChannelGroup failed: %v", err)
	}
	got, err := ch.ChannelGroup()
	if err != nil {
		t.Fatalf("ChannelGroup failed: %v", err)
	}
	if !got.Equal(master) {
		t.Errorf("Expected master group, got handle %v", got.Handle())
	}
}

func TestChannelRegroup(t *testing.T) {
	sys, _, ch := playFixture(t, enginetest.New())
	music := newGroup(t, sys, "music")
	if err := ch.SetChannelGroup(music); err != nil {
		t.Fatalf("SetChannelGroup failed: %v", err)
	}
	got, err := ch.ChannelGroup()
	if err != nil {
		t.Fatalf("ChannelGroup failed: %v", err)
	}
	if !got.Equal(music) {
		t.Errorf("Expected music group, got handle %v", got.Handle())
	}
	if err := ch.SetChannelGroup(nil); !errors.Is(err, fmod.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for nil group, got %v", err)
	}
}

func TestChannelControls(t *testing.T) {
	_, _, ch := playFixture(t, enginetest.New())

	if err := ch.SetVolume(0.5); err != nil {
		t.Fatalf("SetVolume failed: %v", err)
	}
	if v, _ := ch.Volume(); v != 0.5 {
		t.Errorf("Expected volume 0.5, got %v", v)
	}

	if err := ch.SetPitch(0); !errors.Is(err, fmod.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero pitch, got %v", err)
	}
	if err := ch.SetPitch(2); err != nil {
		t.Fatalf("SetPitch failed: %v", err)
	}
	if p, _ := ch.Pitch(); p != 2 {
		t.Errorf("Expected pitch 2, got %v", p)
	}

	if err := ch.SetPan(1.5); !errors.Is(err, fmod.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for pan out of range, got %v", err)
	}
	if err := ch.SetPan(-0.25); err != nil {
		t.Fatalf("SetPan failed: %v", err)
	}

	if err := ch.SetMute(true); err != nil {
		t.Fatalf("SetMute failed: %v", err)
	}
	if m, _ := ch.Mute(); !m {
		t.Errorf("Expected channel to be muted")
	}

	if err := ch.Set3DAttributes(fmod.Vector{X: 1, Y: 2, Z: 3}, fmod.Vector{}); err != nil {
		t.Fatalf("Set3DAttributes failed: %v", err)
	}
}

func TestStolenChannelIsDetected(t *testing.T) {
	e := enginetest.New()
	_, _, ch := playFixture(t, e)

	e.StealChannel(uintptr(ch.Handle()))
	_, verr := ch.Volume()
	var nerr *native.Error
	if !errors.As(verr, &nerr) || nerr.Code != native.ERR_CHANNEL_STOLEN {
		t.Errorf("Expected ERR_CHANNEL_STOLEN, got %v", verr)
	}
}

func TestGroupHierarchy(t *testing.T) {
	sys := newSystem(t, enginetest.New())
	parent := newGroup(t, sys, "parent")
	child := newGroup(t, sys, "child")

	name, err := parent.Name()
	if err != nil || name != "parent" {
		t.Errorf("Expected name parent, got %q (err %v)", name, err)
	}

	if err := parent.AddGroup(nil); !errors.Is(err, fmod.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for nil child, got %v", err)
	}
	if err := parent.AddGroup(child); err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}

	n, err := parent.GroupCount()
	if err != nil || n != 1 {
		t.Fatalf("Expected 1 subgroup, got %d (err %v)", n, err)
	}
	got, ok, err := parent.Group(0)
	if err != nil || !ok {
		t.Fatalf("Group(0) failed: ok=%v err=%v", ok, err)
	}
	if !got.Equal(child) {
		t.Errorf("Expected the added child")
	}
	if _, ok, err := parent.Group(1); ok || err != nil {
		t.Errorf("Expected absence at count, got ok=%v err=%v", ok, err)
	}
	if _, _, err := parent.Group(-1); !errors.Is(err, fmod.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for negative index, got %v", err)
	}
}

func TestGroupReleaseReroutesChannels(t *testing.T) {
	e := enginetest.New()
	sys, _, ch := playFixture(t, e)
	music := newGroup(t, sys, "music")
	if err := ch.SetChannelGroup(music); err != nil {
		t.Fatalf("SetChannelGroup failed: %v", err)
	}
	if err := music.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if _, err := music.Name(); !errors.Is(err, fmod.ErrReleased) {
		t.Errorf("Expected ErrReleased, got %v", err)
	}

	master, err := sys.MasterChannelGroup()
	if err != nil {
		t.Fatalf("MasterChannelGroup failed: %v", err)
	}
	got, err := ch.ChannelGroup()
	if err != nil {
		t.Fatalf("ChannelGroup failed: %v", err)
	}
	if !got.Equal(master) {
		t.Errorf("Expected channel to fall back to master")
	}
}
