package fmod

import (
	"fmt"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// Geometry is an occlusion mesh owned by the engine. Its polygons form an
// indexed collection of proxies: a Polygon has no engine identity of its
// own, only a recorded index into its parent mesh.
type Geometry struct {
	object
}

// Equal reports whether both wrappers refer to the same engine mesh.
func (g *Geometry) Equal(other *Geometry) bool {
	return other != nil && g.h == other.h
}

// AddPolygon appends a polygon to the mesh and returns its proxy.
// Occlusion factors range from 0 (transparent) to 1 (fully occluding);
// vertices must be coplanar, which the engine validates.
func (g *Geometry) AddPolygon(directOcclusion, reverbOcclusion float32, doubleSided bool, vertices []Vector) (*Polygon, error) {
	if err := g.valid(); err != nil {
		return nil, err
	}
	if len(vertices) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 vertices, got %d", ErrInvalidArgument, len(vertices))
	}
	if directOcclusion < 0 || directOcclusion > 1 || reverbOcclusion < 0 || reverbOcclusion > 1 {
		return nil, fmt.Errorf("%w: occlusion factors must be in [0, 1]", ErrInvalidArgument)
	}

	verts := native.NewBuffer(len(vertices) * vectorSize)
	for _, v := range vertices {
		if err := v.encode(verts); err != nil {
			return nil, err
		}
	}
	out := native.NewBuffer(4)
	err := g.c.Invoke("FMOD_Geometry_AddPolygon", g.arg(),
		native.FloatArg(directOcclusion), native.FloatArg(reverbOcclusion), native.BoolArg(doubleSided),
		native.IntArg(len(vertices)), verts.Ptr(), out.Ptr())
	native.Keep(verts)
	if err != nil {
		return nil, err
	}
	index, err := out.Int32()
	if err != nil {
		return nil, err
	}
	return &Polygon{g: g, index: int(index)}, nil
}

// Polygons returns the mesh's polygon collection. Polygons cannot be
// removed or reordered; the collection only grows.
func (g *Geometry) Polygons() List[*Polygon] {
	return List[*Polygon]{ops: polygonListOps{g}}
}

// SetActive includes or excludes the mesh from the engine's occlusion
// raycasting.
func (g *Geometry) SetActive(active bool) error {
	if err := g.valid(); err != nil {
		return err
	}
	return g.c.Invoke("FMOD_Geometry_SetActive", g.arg(), native.BoolArg(active))
}

// Active reports whether the mesh participates in occlusion.
func (g *Geometry) Active() (bool, error) {
	return g.getBool("FMOD_Geometry_GetActive")
}

// SetPosition moves the mesh in world space.
func (g *Geometry) SetPosition(pos Vector) error {
	if err := g.valid(); err != nil {
		return err
	}
	buf := vectorBuf(pos)
	err := g.c.Invoke("FMOD_Geometry_SetPosition", g.arg(), buf.Ptr())
	native.Keep(buf)
	return err
}

// Position returns the mesh's world-space position.
func (g *Geometry) Position() (Vector, error) {
	if err := g.valid(); err != nil {
		return Vector{}, err
	}
	buf := native.NewBuffer(vectorSize)
	if err := g.c.Invoke("FMOD_Geometry_GetPosition", g.arg(), buf.Ptr()); err != nil {
		return Vector{}, err
	}
	return decodeVector(buf)
}

// Save serializes the mesh into the engine's opaque geometry blob, suitable
// for System.LoadGeometry. The engine is asked for the size first, then for
// the data.
func (g *Geometry) Save() ([]byte, error) {
	if err := g.valid(); err != nil {
		return nil, err
	}
	size := native.NewBuffer(4)
	if err := g.c.Invoke("FMOD_Geometry_Save", g.arg(), 0, size.Ptr()); err != nil {
		return nil, err
	}
	n, err := size.Int32()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	data := native.NewBuffer(int(n))
	size.Rewind()
	err = g.c.Invoke("FMOD_Geometry_Save", g.arg(), data.Ptr(), size.Ptr())
	native.Keep(size)
	if err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

// Release frees the mesh inside the engine and invalidates this wrapper
// along with every Polygon proxy pointing into it.
func (g *Geometry) Release() error {
	if err := g.valid(); err != nil {
		return err
	}
	if err := g.c.Invoke("FMOD_Geometry_Release", g.arg()); err != nil {
		return err
	}
	g.invalidate()
	return nil
}

// polygonListOps binds the read-only collection adapter to a mesh.
type polygonListOps struct {
	g *Geometry
}

func (o polygonListOps) count() (int, error) {
	n, err := o.g.getInt32("FMOD_Geometry_GetNumPolygons")
	return int(n), err
}

func (o polygonListOps) at(index int) (*Polygon, error) {
	// Polygons are pure index proxies; existence is all the engine stores.
	return &Polygon{g: o.g, index: index}, nil
}
