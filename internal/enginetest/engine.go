package enginetest

import (
	"strings"
	"sync"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// defaultVersion matches the header version the binding was written against.
const defaultVersion = 0x00020216

// Driver seeds one fake output device.
type Driver struct {
	Name        string
	GUID        [16]byte
	SystemRate  int32
	SpeakerMode int32
	Channels    int32
}

// Tag seeds one metadata entry for a sound.
type Tag struct {
	Name     string
	Type     int32
	DataType int32
	Data     []byte
}

// Engine is the fake. Configure the exported fields before the first call;
// they are read under the engine lock afterwards.
type Engine struct {
	// Version is what FMOD_System_GetVersion reports and what
	// FMOD_System_Create checks the caller's header version against.
	Version uint32

	// AutoFader makes every new channel and group chain start with an
	// engine-owned fader unit, the way the real mixer does. Off by default
	// so chain tests can start from empty.
	AutoFader bool

	// OutputDrivers is the device table behind GetNumDrivers/GetDriverInfo.
	OutputDrivers []Driver

	// TagsByPath attaches metadata to sounds created from these paths.
	TagsByPath map[string][]Tag

	// CPU backs FMOD_System_GetCPUUsage, in FMOD_CPU_USAGE field order.
	CPU [6]float32

	// LockCalls and UnlockCalls count successful LockDSP/UnlockDSP calls.
	LockCalls   int
	UnlockCalls int

	mu       sync.Mutex
	next     uintptr
	systems  map[uintptr]*systemState
	sounds   map[uintptr]*soundState
	channels map[uintptr]*channelState
	groups   map[uintptr]*groupState
	dsps     map[uintptr]*dspState
	geoms    map[uintptr]*geomState
}

type systemState struct {
	closed      bool
	initialized bool
	maxChannels int
	initFlags   uint32
	master      uintptr
	softRate    int32
	softMode    int32
	softRaw     int32
	settings3D  [3]float32
	worldSize   float32
	locked      bool
}

// New returns an engine with no devices, no tags and the current version.
func New() *Engine {
	return &Engine{
		Version:  defaultVersion,
		systems:  make(map[uintptr]*systemState),
		sounds:   make(map[uintptr]*soundState),
		channels: make(map[uintptr]*channelState),
		groups:   make(map[uintptr]*groupState),
		dsps:     make(map[uintptr]*dspState),
		geoms:    make(map[uintptr]*geomState),
	}
}

func (e *Engine) handle() uintptr {
	e.next++
	return e.next
}

// Invoke dispatches a symbol the way the shared library would, returning nil
// for FMOD_OK and a *native.Error otherwise.
func (e *Engine) Invoke(symbol string, args ...uintptr) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.call(symbol, args).Err(symbol)
}

func (e *Engine) call(symbol string, args []uintptr) native.Result {
	switch {
	case strings.HasPrefix(symbol, "FMOD_System_"):
		return e.systemCall(strings.TrimPrefix(symbol, "FMOD_System_"), args)
	case strings.HasPrefix(symbol, "FMOD_Channel_"):
		return e.channelCall(strings.TrimPrefix(symbol, "FMOD_Channel_"), args)
	case strings.HasPrefix(symbol, "FMOD_ChannelGroup_"):
		return e.groupCall(strings.TrimPrefix(symbol, "FMOD_ChannelGroup_"), args)
	case strings.HasPrefix(symbol, "FMOD_Sound_"):
		return e.soundCall(strings.TrimPrefix(symbol, "FMOD_Sound_"), args)
	case strings.HasPrefix(symbol, "FMOD_DSP_"):
		return e.dspCall(strings.TrimPrefix(symbol, "FMOD_DSP_"), args)
	case strings.HasPrefix(symbol, "FMOD_Geometry_"):
		return e.geometryCall(strings.TrimPrefix(symbol, "FMOD_Geometry_"), args)
	default:
		return native.ERR_UNIMPLEMENTED
	}
}

func (e *Engine) systemCall(op string, args []uintptr) native.Result {
	if op == "Create" {
		if uint32(args[1]) > e.Version {
			return native.ERR_VERSION
		}
		h := e.handle()
		sys := &systemState{worldSize: 100}
		sys.master = e.newGroup(h, "master")
		e.systems[h] = sys
		putHandle(args[0], h)
		return native.OK
	}

	sys, ok := e.systems[args[0]]
	if !ok {
		return native.ERR_INVALID_HANDLE
	}
	switch op {
	case "Release":
		e.dropSystem(args[0])
		delete(e.systems, args[0])
		return native.OK
	case "Close":
		if sys.closed {
			return native.OK
		}
		e.dropSystem(args[0])
		sys.closed = true
		sys.initialized = false
		return native.OK
	case "Init":
		if sys.initialized {
			return native.ERR_INITIALIZED
		}
		if sys.closed {
			// Reopening after Close recreates the master bus.
			sys.master = e.newGroup(args[0], "master")
			sys.closed = false
		}
		n := argInt(args[1])
		if n < 1 || n > 4095 {
			return native.ERR_TOOMANYCHANNELS
		}
		sys.initialized = true
		sys.maxChannels = n
		sys.initFlags = uint32(args[2])
		return native.OK
	case "Update":
		if !sys.initialized {
			return native.ERR_UNINITIALIZED
		}
		return native.OK
	case "GetVersion":
		putUint32(args[1], e.Version)
		return native.OK
	case "CreateSound":
		return e.createSound(args[0], args)
	case "CreateChannelGroup":
		h := e.newGroup(args[0], argString(args[1]))
		putHandle(args[2], h)
		return native.OK
	case "GetMasterChannelGroup":
		if sys.closed {
			return native.ERR_INVALID_HANDLE
		}
		putHandle(args[1], sys.master)
		return native.OK
	case "CreateDSPByType":
		h := e.newDSP(args[0], int32(argInt(args[1])))
		putHandle(args[2], h)
		return native.OK
	case "PlaySound":
		return e.playSound(args[0], sys, args)
	case "CreateGeometry":
		maxP, maxV := argInt(args[1]), argInt(args[2])
		if maxP <= 0 || maxV <= 0 {
			return native.ERR_INVALID_PARAM
		}
		h := e.handle()
		e.geoms[h] = &geomState{sys: args[0], maxPolygons: maxP, maxVertices: maxV, active: true}
		putHandle(args[3], h)
		return native.OK
	case "LoadGeometry":
		g, r := decodeGeometry(takeBytes(args[1], argInt(args[2])))
		if r != native.OK {
			return r
		}
		g.sys = args[0]
		h := e.handle()
		e.geoms[h] = g
		putHandle(args[3], h)
		return native.OK
	case "GetNumDrivers":
		putInt32(args[1], int32(len(e.OutputDrivers)))
		return native.OK
	case "GetDriverInfo":
		id := argInt(args[1])
		if id < 0 || id >= len(e.OutputDrivers) {
			return native.ERR_INVALID_PARAM
		}
		d := e.OutputDrivers[id]
		putString(args[2], argInt(args[3]), d.Name)
		putBytes(args[4], d.GUID[:])
		putInt32(args[5], d.SystemRate)
		putInt32(args[6], d.SpeakerMode)
		putInt32(args[7], d.Channels)
		return native.OK
	case "SetSoftwareFormat":
		if sys.initialized {
			return native.ERR_INITIALIZED
		}
		sys.softRate = int32(argInt(args[1]))
		sys.softMode = int32(argInt(args[2]))
		sys.softRaw = int32(argInt(args[3]))
		return native.OK
	case "GetSoftwareFormat":
		putInt32(args[1], sys.softRate)
		putInt32(args[2], sys.softMode)
		putInt32(args[3], sys.softRaw)
		return native.OK
	case "Set3DSettings":
		sys.settings3D = [3]float32{argFloat(args[1]), argFloat(args[2]), argFloat(args[3])}
		return native.OK
	case "SetGeometrySettings":
		w := argFloat(args[1])
		if w <= 0 {
			return native.ERR_INVALID_PARAM
		}
		sys.worldSize = w
		return native.OK
	case "GetGeometrySettings":
		putFloat32(args[1], sys.worldSize)
		return native.OK
	case "GetCPUUsage":
		for i, v := range e.CPU {
			putFloat32(args[1]+uintptr(4*i), v)
		}
		return native.OK
	case "LockDSP":
		if sys.locked {
			return native.ERR_ALREADY_LOCKED
		}
		sys.locked = true
		e.LockCalls++
		return native.OK
	case "UnlockDSP":
		if !sys.locked {
			return native.ERR_NOT_LOCKED
		}
		sys.locked = false
		e.UnlockCalls++
		return native.OK
	default:
		return native.ERR_UNIMPLEMENTED
	}
}

// dropSystem invalidates every handle obtained from the given system.
func (e *Engine) dropSystem(sys uintptr) {
	for h, c := range e.channels {
		if c.sys == sys {
			delete(e.channels, h)
		}
	}
	for h, g := range e.groups {
		if g.sys == sys {
			delete(e.groups, h)
		}
	}
	for h, s := range e.sounds {
		if s.sys == sys {
			delete(e.sounds, h)
		}
	}
	for h, d := range e.dsps {
		if d.sys == sys {
			delete(e.dsps, h)
		}
	}
	for h, g := range e.geoms {
		if g.sys == sys {
			delete(e.geoms, h)
		}
	}
}

func (e *Engine) playSound(sysHandle uintptr, sys *systemState, args []uintptr) native.Result {
	if !sys.initialized {
		return native.ERR_UNINITIALIZED
	}
	snd, ok := e.sounds[args[1]]
	if !ok {
		return native.ERR_INVALID_HANDLE
	}
	group := args[2]
	if group == 0 {
		group = sys.master
	} else if _, ok := e.groups[group]; !ok {
		return native.ERR_INVALID_HANDLE
	}
	h := e.handle()
	ch := &channelState{
		sys:       sysHandle,
		sound:     args[1],
		group:     group,
		playing:   true,
		frequency: float32(snd.rate),
	}
	ch.control = newControl()
	ch.paused = argBool(args[3])
	if e.AutoFader {
		ch.chain = []uintptr{e.newFader(sysHandle)}
	}
	e.channels[h] = ch
	putHandle(args[4], h)
	return native.OK
}
