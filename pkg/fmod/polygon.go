package fmod

import (
	"fmt"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// PolygonAttributes are a polygon's occlusion properties.
type PolygonAttributes struct {
	DirectOcclusion float32
	ReverbOcclusion float32
	DoubleSided     bool
}

// Polygon is an index-bound proxy into a Geometry mesh. It has no engine
// identity: its validity is entirely contingent on the parent mesh staying
// alive and the recorded index remaining correct. The engine never removes
// or reorders polygons, so an index stays correct for the mesh's lifetime.
type Polygon struct {
	g     *Geometry
	index int
}

// Index returns the polygon's position in its parent mesh.
func (p *Polygon) Index() int { return p.index }

// Equal reports whether both proxies address the same polygon of the same
// mesh.
func (p *Polygon) Equal(other *Polygon) bool {
	return other != nil && p.g.h == other.g.h && p.index == other.index
}

// VertexCount reports the number of vertices in the polygon.
func (p *Polygon) VertexCount() (int, error) {
	if err := p.g.valid(); err != nil {
		return 0, err
	}
	buf := native.NewBuffer(4)
	if err := p.g.c.Invoke("FMOD_Geometry_GetPolygonNumVertices", p.g.arg(), native.IntArg(p.index), buf.Ptr()); err != nil {
		return 0, err
	}
	n, err := buf.Int32()
	return int(n), err
}

// Vertex returns the vertex at the given offset within the polygon.
func (p *Polygon) Vertex(i int) (Vector, error) {
	if i < 0 {
		return Vector{}, fmt.Errorf("%w: negative vertex index %d", ErrInvalidArgument, i)
	}
	if err := p.g.valid(); err != nil {
		return Vector{}, err
	}
	buf := native.NewBuffer(vectorSize)
	if err := p.g.c.Invoke("FMOD_Geometry_GetPolygonVertex", p.g.arg(),
		native.IntArg(p.index), native.IntArg(i), buf.Ptr()); err != nil {
		return Vector{}, err
	}
	return decodeVector(buf)
}

// SetVertex moves the vertex at the given offset.
func (p *Polygon) SetVertex(i int, v Vector) error {
	if i < 0 {
		return fmt.Errorf("%w: negative vertex index %d", ErrInvalidArgument, i)
	}
	if err := p.g.valid(); err != nil {
		return err
	}
	buf := vectorBuf(v)
	err := p.g.c.Invoke("FMOD_Geometry_SetPolygonVertex", p.g.arg(),
		native.IntArg(p.index), native.IntArg(i), buf.Ptr())
	native.Keep(buf)
	return err
}

// Attributes returns the polygon's occlusion properties.
func (p *Polygon) Attributes() (PolygonAttributes, error) {
	var a PolygonAttributes
	if err := p.g.valid(); err != nil {
		return a, err
	}
	buf := native.NewBuffer(12)
	if err := p.g.c.Invoke("FMOD_Geometry_GetPolygonAttributes", p.g.arg(),
		native.IntArg(p.index), buf.Ptr(), buf.Ptr()+4, buf.Ptr()+8); err != nil {
		return a, err
	}
	var err error
	if a.DirectOcclusion, err = buf.Float32(); err != nil {
		return a, err
	}
	if a.ReverbOcclusion, err = buf.Float32(); err != nil {
		return a, err
	}
	ds, err := buf.Int32()
	a.DoubleSided = ds != 0
	return a, err
}

// SetAttributes updates the polygon's occlusion properties.
func (p *Polygon) SetAttributes(a PolygonAttributes) error {
	if a.DirectOcclusion < 0 || a.DirectOcclusion > 1 || a.ReverbOcclusion < 0 || a.ReverbOcclusion > 1 {
		return fmt.Errorf("%w: occlusion factors must be in [0, 1]", ErrInvalidArgument)
	}
	if err := p.g.valid(); err != nil {
		return err
	}
	return p.g.c.Invoke("FMOD_Geometry_SetPolygonAttributes", p.g.arg(),
		native.IntArg(p.index),
		native.FloatArg(a.DirectOcclusion), native.FloatArg(a.ReverbOcclusion),
		native.BoolArg(a.DoubleSided))
}
