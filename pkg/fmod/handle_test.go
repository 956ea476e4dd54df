package fmod_test

import (
	"testing"

	"github.com/fmodgo/fmodgo/internal/enginetest"
	"github.com/fmodgo/fmodgo/pkg/fmod"
)

func TestIdentityFollowsHandle(t *testing.T) {
	sys := newSystem(t, enginetest.New())
	chain := newGroup(t, sys, "fx").DSPs()
	d := newDSP(t, sys, fmod.DSPTypeEcho)
	if err := chain.Append(d); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// Reading the chain builds a fresh wrapper around the same engine
	// unit; equality must hold across distinct wrapper instances.
	got, ok, err := chain.At(0)
	if err != nil || !ok {
		t.Fatalf("At(0) failed: ok=%v err=%v", ok, err)
	}
	if got == d {
		t.Fatalf("Expected distinct wrapper instances")
	}
	if !got.Equal(d) {
		t.Errorf("Expected wrappers for the same handle to be equal")
	}
	if got.Handle() != d.Handle() {
		t.Errorf("Expected matching handles, got %v and %v", got.Handle(), d.Handle())
	}

	other := newDSP(t, sys, fmod.DSPTypeEcho)
	if d.Equal(other) {
		t.Errorf("Expected distinct units to differ even with equal type")
	}
	if d.Equal(nil) {
		t.Errorf("Expected nil comparison to be false")
	}
}

func TestHandleAsMapKey(t *testing.T) {
	sys := newSystem(t, enginetest.New())
	chain := newGroup(t, sys, "fx").DSPs()
	d := newDSP(t, sys, fmod.DSPTypeEcho)
	if err := chain.Append(d); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	labels := map[fmod.Handle]string{d.Handle(): "echo"}
	got, ok, err := chain.At(0)
	if err != nil || !ok {
		t.Fatalf("At(0) failed: ok=%v err=%v", ok, err)
	}
	if labels[got.Handle()] != "echo" {
		t.Errorf("Expected handle lookup to find the label")
	}
}

func TestPositionString(t *testing.T) {
	cases := map[fmod.Position]string{
		fmod.Head:  "head",
		fmod.Fader: "fader",
		fmod.Tail:  "tail",
		fmod.At(3): "at(3)",
	}
	for p, want := range cases {
		if got := p.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}
