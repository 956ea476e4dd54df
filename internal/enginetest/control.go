package enginetest

import "github.com/fmodgo/fmodgo/pkg/native"

// control is the playback state shared by channels and groups, mirroring the
// engine's ChannelControl.
type control struct {
	volume float32
	pitch  float32
	pan    float32
	muted  bool
	paused bool
	pos    [3]float32
	vel    [3]float32
	chain  []uintptr
}

func newControl() control {
	return control{volume: 1, pitch: 1}
}

type channelState struct {
	control
	sys       uintptr
	sound     uintptr
	group     uintptr
	playing   bool
	stolen    bool
	frequency float32
	posMS     uint32
}

type groupState struct {
	control
	sys      uintptr
	name     string
	children []uintptr
}

func (e *Engine) newGroup(sys uintptr, name string) uintptr {
	h := e.handle()
	g := &groupState{sys: sys, name: name}
	g.control = newControl()
	if e.AutoFader {
		g.chain = []uintptr{e.newFader(sys)}
	}
	e.groups[h] = g
	return h
}

// controlCall handles the operations both symbol families share. The second
// return value reports whether op was one of them.
func (e *Engine) controlCall(ctl *control, op string, args []uintptr) (native.Result, bool) {
	switch op {
	case "SetVolume":
		ctl.volume = argFloat(args[1])
	case "GetVolume":
		putFloat32(args[1], ctl.volume)
	case "SetPitch":
		p := argFloat(args[1])
		if p <= 0 {
			return native.ERR_INVALID_PARAM, true
		}
		ctl.pitch = p
	case "GetPitch":
		putFloat32(args[1], ctl.pitch)
	case "SetPan":
		p := argFloat(args[1])
		if p < -1 || p > 1 {
			return native.ERR_INVALID_PARAM, true
		}
		ctl.pan = p
	case "SetMute":
		ctl.muted = argBool(args[1])
	case "GetMute":
		putBool(args[1], ctl.muted)
	case "SetPaused":
		ctl.paused = argBool(args[1])
	case "GetPaused":
		putBool(args[1], ctl.paused)
	case "Set3DAttributes":
		if args[1] != 0 {
			ctl.pos = takeVector(args[1])
		}
		if args[2] != 0 {
			ctl.vel = takeVector(args[2])
		}
	case "GetNumDSPs":
		putInt32(args[1], int32(len(ctl.chain)))
	case "GetDSP":
		i := argInt(args[1])
		if i < 0 || i >= len(ctl.chain) {
			return native.ERR_INVALID_PARAM, true
		}
		putHandle(args[2], ctl.chain[i])
	case "AddDSP":
		return e.chainAdd(ctl, argInt(args[1]), args[2]), true
	case "RemoveDSP":
		return e.chainRemove(ctl, args[1]), true
	case "GetDSPIndex":
		i := chainIndex(ctl.chain, args[1])
		if i < 0 {
			return native.ERR_DSP_NOTFOUND, true
		}
		putInt32(args[2], int32(i))
	case "SetDSPIndex":
		return e.chainMove(ctl, args[1], argInt(args[2])), true
	default:
		return native.OK, false
	}
	return native.OK, true
}

func (e *Engine) channelCall(op string, args []uintptr) native.Result {
	ch, ok := e.channels[args[0]]
	if !ok {
		return native.ERR_INVALID_HANDLE
	}
	if ch.stolen {
		return native.ERR_CHANNEL_STOLEN
	}
	if r, handled := e.controlCall(&ch.control, op, args); handled {
		return r
	}
	switch op {
	case "Stop":
		ch.playing = false
		return native.OK
	case "IsPlaying":
		putBool(args[1], ch.playing)
		return native.OK
	case "SetPosition":
		return ch.setPosition(e, uint32(args[1]), uint32(args[2]))
	case "GetPosition":
		return ch.getPosition(e, args[1], uint32(args[2]))
	case "SetFrequency":
		hz := argFloat(args[1])
		if hz <= 0 {
			return native.ERR_INVALID_PARAM
		}
		ch.frequency = hz
		return native.OK
	case "GetFrequency":
		putFloat32(args[1], ch.frequency)
		return native.OK
	case "GetCurrentSound":
		putHandle(args[1], ch.sound)
		return native.OK
	case "SetChannelGroup":
		if _, ok := e.groups[args[1]]; !ok {
			return native.ERR_INVALID_HANDLE
		}
		ch.group = args[1]
		return native.OK
	case "GetChannelGroup":
		putHandle(args[1], ch.group)
		return native.OK
	default:
		return native.ERR_UNIMPLEMENTED
	}
}

func (ch *channelState) setPosition(e *Engine, pos, unit uint32) native.Result {
	ms, r := ch.toMS(e, pos, unit)
	if r != native.OK {
		return r
	}
	snd, ok := e.sounds[ch.sound]
	if ok && ms > snd.lengthMS {
		return native.ERR_INVALID_POSITION
	}
	ch.posMS = ms
	return native.OK
}

func (ch *channelState) getPosition(e *Engine, out uintptr, unit uint32) native.Result {
	switch unit {
	case 0x1: // ms
		putUint32(out, ch.posMS)
	case 0x2: // pcm
		snd, ok := e.sounds[ch.sound]
		if !ok {
			return native.ERR_INVALID_HANDLE
		}
		putUint32(out, uint32(uint64(ch.posMS)*uint64(snd.rate)/1000))
	default:
		return native.ERR_UNSUPPORTED
	}
	return native.OK
}

func (ch *channelState) toMS(e *Engine, pos, unit uint32) (uint32, native.Result) {
	switch unit {
	case 0x1:
		return pos, native.OK
	case 0x2:
		snd, ok := e.sounds[ch.sound]
		if !ok || snd.rate == 0 {
			return 0, native.ERR_INVALID_HANDLE
		}
		return uint32(uint64(pos) * 1000 / uint64(snd.rate)), native.OK
	default:
		return 0, native.ERR_UNSUPPORTED
	}
}

func (e *Engine) groupCall(op string, args []uintptr) native.Result {
	g, ok := e.groups[args[0]]
	if !ok {
		return native.ERR_INVALID_HANDLE
	}
	if r, handled := e.controlCall(&g.control, op, args); handled {
		return r
	}
	switch op {
	case "GetName":
		putString(args[1], argInt(args[2]), g.name)
		return native.OK
	case "AddGroup":
		if _, ok := e.groups[args[1]]; !ok {
			return native.ERR_INVALID_HANDLE
		}
		g.children = append(g.children, args[1])
		return native.OK
	case "GetNumGroups":
		putInt32(args[1], int32(len(g.children)))
		return native.OK
	case "GetGroup":
		i := argInt(args[1])
		if i < 0 || i >= len(g.children) {
			return native.ERR_INVALID_PARAM
		}
		putHandle(args[2], g.children[i])
		return native.OK
	case "Stop":
		for _, ch := range e.channels {
			if ch.group == args[0] {
				ch.playing = false
			}
		}
		return native.OK
	case "IsPlaying":
		playing := false
		for _, ch := range e.channels {
			if ch.group == args[0] && ch.playing {
				playing = true
			}
		}
		putBool(args[1], playing)
		return native.OK
	case "Release":
		for _, ch := range e.channels {
			if ch.group == args[0] {
				if sys, ok := e.systems[g.sys]; ok {
					ch.group = sys.master
				}
			}
		}
		for _, d := range g.chain {
			e.unlinkDSP(d)
		}
		delete(e.groups, args[0])
		return native.OK
	default:
		return native.ERR_UNIMPLEMENTED
	}
}

// StealChannel simulates the engine reclaiming a virtual channel for another
// sound, after which every call through the old handle fails.
func (e *Engine) StealChannel(h uintptr) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if ch, ok := e.channels[h]; ok {
		ch.stolen = true
		ch.playing = false
	}
}

func takeVector(p uintptr) [3]float32 {
	b := native.Wrap(takeBytes(p, 12))
	x, _ := b.Float32()
	y, _ := b.Float32()
	z, _ := b.Float32()
	return [3]float32{x, y, z}
}
