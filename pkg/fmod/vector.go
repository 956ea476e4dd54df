package fmod

import "github.com/fmodgo/fmodgo/pkg/native"

// Vector is the engine's 3-float vector (FMOD_VECTOR). Whether +Z points
// into or out of the screen depends on the System's 3D settings.
type Vector struct {
	X, Y, Z float32
}

const vectorSize = 12

func (v Vector) encode(buf *native.Buffer) error {
	if err := buf.PutFloat32(v.X); err != nil {
		return err
	}
	if err := buf.PutFloat32(v.Y); err != nil {
		return err
	}
	return buf.PutFloat32(v.Z)
}

func decodeVector(buf *native.Buffer) (Vector, error) {
	var v Vector
	var err error
	if v.X, err = buf.Float32(); err != nil {
		return v, err
	}
	if v.Y, err = buf.Float32(); err != nil {
		return v, err
	}
	v.Z, err = buf.Float32()
	return v, err
}

// vectorBuf packs a vector into a fresh boundary buffer.
func vectorBuf(v Vector) *native.Buffer {
	buf := native.NewBuffer(vectorSize)
	v.encode(buf) // cannot fail: buffer is sized for exactly one vector
	return buf
}

// CPUUsage is the engine's per-subsystem CPU load report (FMOD_CPU_USAGE),
// each field a percentage of one core.
type CPUUsage struct {
	DSP          float32
	Stream       float32
	Geometry     float32
	Update       float32
	Convolution1 float32
	Convolution2 float32
}

const cpuUsageSize = 24

func decodeCPUUsage(buf *native.Buffer) (CPUUsage, error) {
	var u CPUUsage
	fields := []*float32{&u.DSP, &u.Stream, &u.Geometry, &u.Update, &u.Convolution1, &u.Convolution2}
	for _, f := range fields {
		v, err := buf.Float32()
		if err != nil {
			return u, err
		}
		*f = v
	}
	return u, nil
}
