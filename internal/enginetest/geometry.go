package enginetest

import "github.com/fmodgo/fmodgo/pkg/native"

type polygon struct {
	direct      float32
	reverb      float32
	doubleSided bool
	verts       [][3]float32
}

type geomState struct {
	sys         uintptr
	maxPolygons int
	maxVertices int
	active      bool
	position    [3]float32
	polys       []*polygon
}

func (g *geomState) vertexCount() int {
	n := 0
	for _, p := range g.polys {
		n += len(p.verts)
	}
	return n
}

func (e *Engine) geometryCall(op string, args []uintptr) native.Result {
	g, ok := e.geoms[args[0]]
	if !ok {
		return native.ERR_INVALID_HANDLE
	}
	switch op {
	case "AddPolygon":
		return g.addPolygon(args)
	case "GetNumPolygons":
		putInt32(args[1], int32(len(g.polys)))
		return native.OK
	case "GetPolygonNumVertices":
		p, r := g.polygon(argInt(args[1]))
		if r != native.OK {
			return r
		}
		putInt32(args[2], int32(len(p.verts)))
		return native.OK
	case "GetPolygonVertex":
		p, r := g.polygon(argInt(args[1]))
		if r != native.OK {
			return r
		}
		vi := argInt(args[2])
		if vi < 0 || vi >= len(p.verts) {
			return native.ERR_INVALID_PARAM
		}
		putVector(args[3], p.verts[vi])
		return native.OK
	case "SetPolygonVertex":
		p, r := g.polygon(argInt(args[1]))
		if r != native.OK {
			return r
		}
		vi := argInt(args[2])
		if vi < 0 || vi >= len(p.verts) {
			return native.ERR_INVALID_PARAM
		}
		p.verts[vi] = takeVector(args[3])
		return native.OK
	case "GetPolygonAttributes":
		p, r := g.polygon(argInt(args[1]))
		if r != native.OK {
			return r
		}
		putFloat32(args[2], p.direct)
		putFloat32(args[3], p.reverb)
		putBool(args[4], p.doubleSided)
		return native.OK
	case "SetPolygonAttributes":
		p, r := g.polygon(argInt(args[1]))
		if r != native.OK {
			return r
		}
		direct, reverb := argFloat(args[2]), argFloat(args[3])
		if direct < 0 || direct > 1 || reverb < 0 || reverb > 1 {
			return native.ERR_INVALID_PARAM
		}
		p.direct, p.reverb, p.doubleSided = direct, reverb, argBool(args[4])
		return native.OK
	case "SetActive":
		g.active = argBool(args[1])
		return native.OK
	case "GetActive":
		putBool(args[1], g.active)
		return native.OK
	case "SetPosition":
		g.position = takeVector(args[1])
		return native.OK
	case "GetPosition":
		putVector(args[1], g.position)
		return native.OK
	case "Save":
		blob := encodeGeometry(g)
		if args[1] != 0 {
			putBytes(args[1], blob)
		}
		putInt32(args[2], int32(len(blob)))
		return native.OK
	case "Release":
		delete(e.geoms, args[0])
		return native.OK
	default:
		return native.ERR_UNIMPLEMENTED
	}
}

func (g *geomState) polygon(i int) (*polygon, native.Result) {
	if i < 0 || i >= len(g.polys) {
		return nil, native.ERR_INVALID_PARAM
	}
	return g.polys[i], native.OK
}

func (g *geomState) addPolygon(args []uintptr) native.Result {
	direct, reverb := argFloat(args[1]), argFloat(args[2])
	if direct < 0 || direct > 1 || reverb < 0 || reverb > 1 {
		return native.ERR_INVALID_PARAM
	}
	n := argInt(args[4])
	if n < 3 {
		return native.ERR_INVALID_PARAM
	}
	if len(g.polys) >= g.maxPolygons || g.vertexCount()+n > g.maxVertices {
		return native.ERR_MEMORY
	}
	p := &polygon{direct: direct, reverb: reverb, doubleSided: argBool(args[3])}
	for i := 0; i < n; i++ {
		p.verts = append(p.verts, takeVector(args[5]+uintptr(12*i)))
	}
	g.polys = append(g.polys, p)
	putInt32(args[6], int32(len(g.polys)-1))
	return native.OK
}

func putVector(p uintptr, v [3]float32) {
	putFloat32(p, v[0])
	putFloat32(p+4, v[1])
	putFloat32(p+8, v[2])
}
