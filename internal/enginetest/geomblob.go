package enginetest

import (
	"bytes"
	"encoding/binary"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// The geometry blob is opaque to callers; this layout only has to round-trip
// through Save and LoadGeometry.
const (
	geomMagic   = uint32(0x4F454746) // "FGEO"
	geomVersion = uint32(1)
)

func encodeGeometry(g *geomState) []byte {
	var buf bytes.Buffer
	w := func(v any) { binary.Write(&buf, binary.LittleEndian, v) }
	w(geomMagic)
	w(geomVersion)
	w(int32(g.maxPolygons))
	w(int32(g.maxVertices))
	w(g.position)
	w(int32(len(g.polys)))
	for _, p := range g.polys {
		w(p.direct)
		w(p.reverb)
		var ds int32
		if p.doubleSided {
			ds = 1
		}
		w(ds)
		w(int32(len(p.verts)))
		for _, v := range p.verts {
			w(v)
		}
	}
	return buf.Bytes()
}

func decodeGeometry(data []byte) (*geomState, native.Result) {
	r := bytes.NewReader(data)
	var magic, version uint32
	rd := func(v any) bool { return binary.Read(r, binary.LittleEndian, v) == nil }
	if !rd(&magic) || magic != geomMagic || !rd(&version) || version != geomVersion {
		return nil, native.ERR_FORMAT
	}
	var maxP, maxV, count int32
	g := &geomState{active: true}
	if !rd(&maxP) || !rd(&maxV) || !rd(&g.position) || !rd(&count) {
		return nil, native.ERR_FORMAT
	}
	if maxP < 0 || maxV < 0 || count < 0 || count > maxP {
		return nil, native.ERR_FORMAT
	}
	g.maxPolygons, g.maxVertices = int(maxP), int(maxV)
	for i := int32(0); i < count; i++ {
		p := &polygon{}
		var ds, nverts int32
		if !rd(&p.direct) || !rd(&p.reverb) || !rd(&ds) || !rd(&nverts) {
			return nil, native.ERR_FORMAT
		}
		if nverts < 3 {
			return nil, native.ERR_FORMAT
		}
		p.doubleSided = ds != 0
		p.verts = make([][3]float32, nverts)
		for j := range p.verts {
			if !rd(&p.verts[j]) {
				return nil, native.ERR_FORMAT
			}
		}
		g.polys = append(g.polys, p)
	}
	return g, native.OK
}
