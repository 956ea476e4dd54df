package enginetest

import "github.com/fmodgo/fmodgo/pkg/native"

// dspTypeFader matches FMOD_DSP_TYPE_FADER.
const dspTypeFader = 7

// maxDSPParams caps parameter indices, standing in for the per-type parameter
// lists of the real units.
const maxDSPParams = 32

type dspState struct {
	sys    uintptr
	typ    int32
	active bool
	bypass bool
	links  int
	params map[int]float32
}

func (e *Engine) newDSP(sys uintptr, typ int32) uintptr {
	h := e.handle()
	e.dsps[h] = &dspState{sys: sys, typ: typ, params: make(map[int]float32)}
	return h
}

// newFader creates the engine-owned unit AutoFader plants in fresh chains.
func (e *Engine) newFader(sys uintptr) uintptr {
	h := e.newDSP(sys, dspTypeFader)
	d := e.dsps[h]
	d.active = true
	d.links = 1
	return h
}

func chainIndex(chain []uintptr, d uintptr) int {
	for i, h := range chain {
		if h == d {
			return i
		}
	}
	return -1
}

// resolveInsert maps an insertion index, including the head/fader/tail
// sentinels, onto a slot in the current chain. Indices beyond the end clamp
// to the tail.
func (e *Engine) resolveInsert(chain []uintptr, pos int) (int, native.Result) {
	switch {
	case pos >= 0:
		if pos > len(chain) {
			return len(chain), native.OK
		}
		return pos, native.OK
	case pos == -1: // head
		return 0, native.OK
	case pos == -2: // fader
		for i, h := range chain {
			if d, ok := e.dsps[h]; ok && d.typ == dspTypeFader {
				return i, native.OK
			}
		}
		return 0, native.OK
	case pos == -3: // tail
		return len(chain), native.OK
	default:
		return 0, native.ERR_INVALID_PARAM
	}
}

func (e *Engine) chainAdd(ctl *control, pos int, dh uintptr) native.Result {
	d, ok := e.dsps[dh]
	if !ok {
		return native.ERR_INVALID_HANDLE
	}
	i, r := e.resolveInsert(ctl.chain, pos)
	if r != native.OK {
		return r
	}
	ctl.chain = append(ctl.chain, 0)
	copy(ctl.chain[i+1:], ctl.chain[i:])
	ctl.chain[i] = dh
	d.links++
	d.active = true
	return native.OK
}

func (e *Engine) chainRemove(ctl *control, dh uintptr) native.Result {
	if _, ok := e.dsps[dh]; !ok {
		return native.ERR_INVALID_HANDLE
	}
	i := chainIndex(ctl.chain, dh)
	if i < 0 {
		return native.ERR_DSP_NOTFOUND
	}
	ctl.chain = append(ctl.chain[:i], ctl.chain[i+1:]...)
	e.unlinkDSP(dh)
	return native.OK
}

func (e *Engine) chainMove(ctl *control, dh uintptr, pos int) native.Result {
	if _, ok := e.dsps[dh]; !ok {
		return native.ERR_INVALID_HANDLE
	}
	i := chainIndex(ctl.chain, dh)
	if i < 0 {
		return native.ERR_DSP_NOTFOUND
	}
	rest := append(ctl.chain[:i:i], ctl.chain[i+1:]...)
	j, r := e.resolveInsert(rest, pos)
	if r != native.OK {
		return r
	}
	chain := make([]uintptr, 0, len(ctl.chain))
	chain = append(chain, rest[:j]...)
	chain = append(chain, dh)
	chain = append(chain, rest[j:]...)
	ctl.chain = chain
	return native.OK
}

func (e *Engine) unlinkDSP(dh uintptr) {
	if d, ok := e.dsps[dh]; ok && d.links > 0 {
		d.links--
	}
}

func (e *Engine) dspCall(op string, args []uintptr) native.Result {
	d, ok := e.dsps[args[0]]
	if !ok {
		return native.ERR_INVALID_HANDLE
	}
	switch op {
	case "GetType":
		putInt32(args[1], d.typ)
		return native.OK
	case "SetActive":
		d.active = argBool(args[1])
		return native.OK
	case "GetActive":
		putBool(args[1], d.active)
		return native.OK
	case "SetBypass":
		d.bypass = argBool(args[1])
		return native.OK
	case "GetBypass":
		putBool(args[1], d.bypass)
		return native.OK
	case "SetParameterFloat":
		i := argInt(args[1])
		if i < 0 || i >= maxDSPParams {
			return native.ERR_INVALID_PARAM
		}
		d.params[i] = argFloat(args[2])
		return native.OK
	case "GetParameterFloat":
		i := argInt(args[1])
		if i < 0 || i >= maxDSPParams {
			return native.ERR_INVALID_PARAM
		}
		putFloat32(args[2], d.params[i])
		return native.OK
	case "Release":
		if d.links > 0 {
			return native.ERR_DSP_INUSE
		}
		delete(e.dsps, args[0])
		return native.OK
	default:
		return native.ERR_UNIMPLEMENTED
	}
}
