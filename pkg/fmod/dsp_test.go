package fmod_test

import (
	"errors"
	"testing"

	"github.com/fmodgo/fmodgo/internal/enginetest"
	"github.com/fmodgo/fmodgo/pkg/fmod"
	"github.com/fmodgo/fmodgo/pkg/native"
)

func TestDSPType(t *testing.T) {
	sys := newSystem(t, enginetest.New())
	d := newDSP(t, sys, fmod.DSPTypeEcho)
	typ, err := d.Type()
	if err != nil || typ != fmod.DSPTypeEcho {
		t.Errorf("Expected echo type, got %d (err %v)", typ, err)
	}
}

func TestDSPActivatesWhenLinked(t *testing.T) {
	sys := newSystem(t, enginetest.New())
	chain := newGroup(t, sys, "fx").DSPs()
	d := newDSP(t, sys, fmod.DSPTypeEcho)

	active, err := d.Active()
	if err != nil || active {
		t.Fatalf("Expected fresh unit to be inactive, got %v (err %v)", active, err)
	}
	if err := chain.Append(d); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if active, _ = d.Active(); !active {
		t.Errorf("Expected unit to activate when linked")
	}
}

func TestDSPBypass(t *testing.T) {
	sys := newSystem(t, enginetest.New())
	d := newDSP(t, sys, fmod.DSPTypeLowpass)
	if err := d.SetBypass(true); err != nil {
		t.Fatalf("SetBypass failed: %v", err)
	}
	b, err := d.Bypass()
	if err != nil || !b {
		t.Errorf("Expected bypass on, got %v (err %v)", b, err)
	}
}

func TestDSPParameters(t *testing.T) {
	sys := newSystem(t, enginetest.New())
	d := newDSP(t, sys, fmod.DSPTypeEcho)

	if err := d.SetParameterFloat(-1, 0); !errors.Is(err, fmod.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for negative index, got %v", err)
	}
	if err := d.SetParameterFloat(0, 250); err != nil {
		t.Fatalf("SetParameterFloat failed: %v", err)
	}
	v, err := d.ParameterFloat(0)
	if err != nil || v != 250 {
		t.Errorf("Expected 250, got %v (err %v)", v, err)
	}

	_, perr := d.ParameterFloat(99)
	var nerr *native.Error
	if !errors.As(perr, &nerr) || nerr.Code != native.ERR_INVALID_PARAM {
		t.Errorf("Expected ERR_INVALID_PARAM for unknown parameter, got %v", perr)
	}
}

func TestDSPReleaseWhileLinked(t *testing.T) {
	sys := newSystem(t, enginetest.New())
	chain := newGroup(t, sys, "fx").DSPs()
	d := newDSP(t, sys, fmod.DSPTypeEcho)
	if err := chain.Append(d); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	rerr := d.Release()
	var nerr *native.Error
	if !errors.As(rerr, &nerr) || nerr.Code != native.ERR_DSP_INUSE {
		t.Fatalf("Expected ERR_DSP_INUSE while linked, got %v", rerr)
	}

	if err := chain.Remove(d); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := d.Release(); err != nil {
		t.Fatalf("Release after unlink failed: %v", err)
	}
	if _, err := d.Type(); !errors.Is(err, fmod.ErrReleased) {
		t.Errorf("Expected ErrReleased, got %v", err)
	}
}
