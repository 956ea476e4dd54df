package fmod_test

import (
	"runtime"
	"testing"

	"github.com/fmodgo/fmodgo/internal/enginetest"
	"github.com/fmodgo/fmodgo/pkg/fmod"
	"github.com/fmodgo/fmodgo/pkg/native"
)

// collectingCaller forces a garbage collection before every dispatch. An
// input buffer whose only Go-side reference was the pointer argument would
// be eligible for reclamation right when the engine reads it.
type collectingCaller struct {
	c native.Caller
}

func (cc collectingCaller) Invoke(symbol string, args ...uintptr) error {
	runtime.GC()
	return cc.c.Invoke(symbol, args...)
}

func TestInputBuffersSurviveCollection(t *testing.T) {
	e := enginetest.New()
	path := writeWAV(t, "keep.wav", 8000, 800)
	e.TagsByPath = map[string][]enginetest.Tag{
		path: {
			{Name: "TITLE", Type: int32(fmod.TagTypeID3V2), DataType: int32(fmod.TagDataTypeString), Data: []byte("Keep")},
		},
	}

	sys, err := fmod.NewSystem(collectingCaller{e})
	if err != nil {
		t.Fatalf("NewSystem failed: %v", err)
	}
	if err := sys.Init(64, fmod.InitNormal); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	// Path string buffer.
	snd, err := sys.CreateSound(path, fmod.ModeDefault)
	if err != nil {
		t.Fatalf("CreateSound failed: %v", err)
	}
	name, err := snd.Name()
	if err != nil || name != "keep.wav" {
		t.Errorf("Expected name keep.wav, got %q (err %v)", name, err)
	}

	// Tag name buffer.
	tag, err := snd.TagByName("TITLE")
	if err != nil {
		t.Fatalf("TagByName failed: %v", err)
	}
	if s := tag.StringValue(); s != "Keep" {
		t.Errorf("Expected tag value Keep, got %q", s)
	}

	// Group name buffer and the two 3D vectors.
	grp, err := sys.CreateChannelGroup("collected")
	if err != nil {
		t.Fatalf("CreateChannelGroup failed: %v", err)
	}
	if n, err := grp.Name(); err != nil || n != "collected" {
		t.Errorf("Expected group name collected, got %q (err %v)", n, err)
	}
	if err := grp.Set3DAttributes(fmod.Vector{X: 1}, fmod.Vector{Z: 2}); err != nil {
		t.Errorf("Set3DAttributes failed: %v", err)
	}

	// Vertex array, single-vector and blob buffers.
	geo, err := sys.CreateGeometry(4, 16)
	if err != nil {
		t.Fatalf("CreateGeometry failed: %v", err)
	}
	poly, err := geo.AddPolygon(0.5, 0.5, false, []fmod.Vector{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0},
	})
	if err != nil {
		t.Fatalf("AddPolygon failed: %v", err)
	}
	if err := poly.SetVertex(1, fmod.Vector{X: 2}); err != nil {
		t.Fatalf("SetVertex failed: %v", err)
	}
	v, err := poly.Vertex(1)
	if err != nil || v.X != 2 {
		t.Errorf("Expected vertex X 2, got %v (err %v)", v, err)
	}
	if err := geo.SetPosition(fmod.Vector{Y: 3}); err != nil {
		t.Fatalf("SetPosition failed: %v", err)
	}
	pos, err := geo.Position()
	if err != nil || pos.Y != 3 {
		t.Errorf("Expected position Y 3, got %v (err %v)", pos, err)
	}

	blob, err := geo.Save()
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := sys.LoadGeometry(blob)
	if err != nil {
		t.Fatalf("LoadGeometry failed: %v", err)
	}
	if n, err := loaded.Polygons().Count(); err != nil || n != 1 {
		t.Errorf("Expected 1 polygon after reload, got %d (err %v)", n, err)
	}
}
