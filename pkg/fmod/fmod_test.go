package fmod_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/fmodgo/fmodgo/internal/enginetest"
	"github.com/fmodgo/fmodgo/pkg/fmod"
)

// newSystem builds an initialized system on a fake engine.
func newSystem(t *testing.T, e *enginetest.Engine) *fmod.System {
	t.Helper()
	sys, err := fmod.NewSystem(e)
	if err != nil {
		t.Fatalf("NewSystem failed: %v", err)
	}
	if err := sys.Init(64, fmod.InitNormal); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return sys
}

func newDSP(t *testing.T, sys *fmod.System, typ fmod.DSPType) *fmod.DSP {
	t.Helper()
	d, err := sys.CreateDSPByType(typ)
	if err != nil {
		t.Fatalf("CreateDSPByType(%d) failed: %v", typ, err)
	}
	return d
}

func newGroup(t *testing.T, sys *fmod.System, name string) *fmod.ChannelGroup {
	t.Helper()
	g, err := sys.CreateChannelGroup(name)
	if err != nil {
		t.Fatalf("CreateChannelGroup(%q) failed: %v", name, err)
	}
	return g
}

// chainHandles drains a chain iteration into handle order.
func chainHandles(t *testing.T, c fmod.Chain[*fmod.DSP]) []fmod.Handle {
	t.Helper()
	var hs []fmod.Handle
	for d, err := range c.All() {
		if err != nil {
			t.Fatalf("Iteration failed: %v", err)
		}
		hs = append(hs, d.Handle())
	}
	return hs
}

// writeWAV writes a silent mono 16-bit fixture and returns its path.
func writeWAV(t *testing.T, name string, rate, frames int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create fixture failed: %v", err)
	}
	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		Data:           make([]int, frames),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Encode fixture failed: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close encoder failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close fixture failed: %v", err)
	}
	return path
}

func wantOrder(t *testing.T, got []fmod.Handle, want ...*fmod.DSP) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d elements, got %d", len(want), len(got))
	}
	for i, d := range want {
		if got[i] != d.Handle() {
			t.Errorf("Expected handle %v at %d, got %v", d.Handle(), i, got[i])
		}
	}
}
