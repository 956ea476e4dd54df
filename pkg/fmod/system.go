package fmod

import (
	"fmt"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// headerVersion is the FMOD_VERSION this binding was written against.
// The engine rejects creation when the loaded library is older.
const headerVersion = 0x00020216

// Mode holds sound creation flags (FMOD_MODE).
type Mode uint32

const (
	ModeDefault      Mode = 0
	ModeLoopOff      Mode = 0x1
	ModeLoopNormal   Mode = 0x2
	ModeLoopBidi     Mode = 0x4
	Mode2D           Mode = 0x8
	Mode3D           Mode = 0x10
	ModeCreateStream Mode = 0x80
	ModeCreateSample Mode = 0x100
	ModeOpenOnly     Mode = 0x2000
	ModeIgnoreTags   Mode = 0x02000000
)

// InitFlags hold System.Init behavior flags (FMOD_INITFLAGS).
type InitFlags uint32

const (
	InitNormal           InitFlags = 0
	InitStreamFromUpdate InitFlags = 0x1
	InitMixFromUpdate    InitFlags = 0x2
	Init3DRightHanded    InitFlags = 0x4
	InitChannelLowpass   InitFlags = 0x100
	InitProfileEnable    InitFlags = 0x10000
)

// maxSystemChannels is the engine's virtual channel ceiling.
const maxSystemChannels = 4095

// System is the top-level engine instance. Every other object (sounds,
// channels, groups, DSP units, geometry) is created through it and becomes
// invalid when it is closed or released.
type System struct {
	object
}

// NewSystem creates an engine instance on the given call surface. Use
// native.Load() for the real shared library.
func NewSystem(c native.Caller) (*System, error) {
	buf := native.NewBuffer(8)
	if err := c.Invoke("FMOD_System_Create", buf.Ptr(), uintptr(headerVersion)); err != nil {
		return nil, err
	}
	h, err := buf.Uintptr()
	if err != nil {
		return nil, err
	}
	return &System{object{c: c, h: Handle(h)}}, nil
}

// Equal reports whether both wrappers refer to the same engine instance.
func (s *System) Equal(other *System) bool {
	return other != nil && s.h == other.h
}

// Init brings the output device up. maxChannels is the virtual voice
// budget, between 1 and 4095.
func (s *System) Init(maxChannels int, flags InitFlags) error {
	if maxChannels < 1 || maxChannels > maxSystemChannels {
		return fmt.Errorf("%w: maxChannels %d out of [1, %d]", ErrInvalidArgument, maxChannels, maxSystemChannels)
	}
	if err := s.valid(); err != nil {
		return err
	}
	return s.c.Invoke("FMOD_System_Init", s.arg(), native.IntArg(maxChannels), uintptr(flags), 0)
}

// Close shuts the output device down. Every handle obtained from this
// system (sounds, channels, groups, DSPs, geometry) is invalidated on the
// engine side. The wrappers cannot observe that directly, so using them
// afterwards fails with whatever status the engine reports.
func (s *System) Close() error {
	if err := s.valid(); err != nil {
		return err
	}
	return s.c.Invoke("FMOD_System_Close", s.arg())
}

// Release closes and destroys the engine instance, then invalidates this
// wrapper.
func (s *System) Release() error {
	if err := s.valid(); err != nil {
		return err
	}
	if err := s.c.Invoke("FMOD_System_Release", s.arg()); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// Update pumps the engine once. Call it regularly (typically once per game
// tick); streaming, virtual voice management and callback delivery run from
// here.
func (s *System) Update() error {
	if err := s.valid(); err != nil {
		return err
	}
	return s.c.Invoke("FMOD_System_Update", s.arg())
}

// Version returns the loaded engine library's version, encoded as
// 0xaaaabbcc (major, minor, patch in BCD).
func (s *System) Version() (uint32, error) {
	if err := s.valid(); err != nil {
		return 0, err
	}
	buf := native.NewBuffer(4)
	if err := s.c.Invoke("FMOD_System_GetVersion", s.arg(), buf.Ptr()); err != nil {
		return 0, err
	}
	return buf.Uint32()
}

// CreateSound loads audio from path into a new Sound. The engine does the
// file I/O and codec work; pass ModeCreateStream (or use CreateStream) to
// decode incrementally instead of up front.
func (s *System) CreateSound(path string, mode Mode) (*Sound, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	if err := s.valid(); err != nil {
		return nil, err
	}
	p := native.Wrap(pathArg(path))
	out := native.NewBuffer(8)
	err := s.c.Invoke("FMOD_System_CreateSound", s.arg(), p.Ptr(), uintptr(mode), 0, out.Ptr())
	native.Keep(p)
	if err != nil {
		return nil, err
	}
	h, err := out.Uintptr()
	if err != nil {
		return nil, err
	}
	return &Sound{object{c: s.c, h: Handle(h)}}, nil
}

// CreateStream is CreateSound with streaming decode.
func (s *System) CreateStream(path string, mode Mode) (*Sound, error) {
	return s.CreateSound(path, mode|ModeCreateStream)
}

// CreateChannelGroup creates a named mix bus under the master group.
func (s *System) CreateChannelGroup(name string) (*ChannelGroup, error) {
	if err := s.valid(); err != nil {
		return nil, err
	}
	n := native.Wrap(pathArg(name))
	out := native.NewBuffer(8)
	err := s.c.Invoke("FMOD_System_CreateChannelGroup", s.arg(), n.Ptr(), out.Ptr())
	native.Keep(n)
	if err != nil {
		return nil, err
	}
	h, err := out.Uintptr()
	if err != nil {
		return nil, err
	}
	return newChannelGroup(s.c, Handle(h)), nil
}

// MasterChannelGroup returns the root mix bus every channel ultimately
// routes through.
func (s *System) MasterChannelGroup() (*ChannelGroup, error) {
	h, err := s.getHandle("FMOD_System_GetMasterChannelGroup")
	if err != nil {
		return nil, err
	}
	return newChannelGroup(s.c, h), nil
}

// CreateDSPByType creates a standalone effect unit of the given built-in
// type. The unit does nothing until linked into a chain.
func (s *System) CreateDSPByType(t DSPType) (*DSP, error) {
	if err := s.valid(); err != nil {
		return nil, err
	}
	out := native.NewBuffer(8)
	if err := s.c.Invoke("FMOD_System_CreateDSPByType", s.arg(), native.IntArg(int(t)), out.Ptr()); err != nil {
		return nil, err
	}
	h, err := out.Uintptr()
	if err != nil {
		return nil, err
	}
	return &DSP{object{c: s.c, h: Handle(h)}}, nil
}

// PlaySound starts sound on a fresh channel routed into group (nil for the
// master group). Start paused to set volume or position without an audible
// glitch, then unpause.
func (s *System) PlaySound(sound *Sound, group *ChannelGroup, paused bool) (*Channel, error) {
	if sound == nil {
		return nil, fmt.Errorf("%w: nil sound", ErrInvalidArgument)
	}
	if err := s.valid(); err != nil {
		return nil, err
	}
	if err := sound.valid(); err != nil {
		return nil, err
	}
	var groupArg uintptr
	if group != nil {
		if err := group.valid(); err != nil {
			return nil, err
		}
		groupArg = group.arg()
	}
	out := native.NewBuffer(8)
	if err := s.c.Invoke("FMOD_System_PlaySound", s.arg(), sound.arg(), groupArg,
		native.BoolArg(paused), out.Ptr()); err != nil {
		return nil, err
	}
	h, err := out.Uintptr()
	if err != nil {
		return nil, err
	}
	return newChannel(s.c, Handle(h)), nil
}

// CreateGeometry allocates an empty occlusion mesh with the given capacity.
func (s *System) CreateGeometry(maxPolygons, maxVertices int) (*Geometry, error) {
	if maxPolygons <= 0 || maxVertices <= 0 {
		return nil, fmt.Errorf("%w: geometry capacity must be positive", ErrInvalidArgument)
	}
	if err := s.valid(); err != nil {
		return nil, err
	}
	out := native.NewBuffer(8)
	if err := s.c.Invoke("FMOD_System_CreateGeometry", s.arg(),
		native.IntArg(maxPolygons), native.IntArg(maxVertices), out.Ptr()); err != nil {
		return nil, err
	}
	h, err := out.Uintptr()
	if err != nil {
		return nil, err
	}
	return &Geometry{object{c: s.c, h: Handle(h)}}, nil
}

// LoadGeometry rebuilds a mesh from a blob produced by Geometry.Save.
// Reading the blob from disk (or wherever it lives) is the caller's
// concern; this operation only crosses the native boundary.
func (s *System) LoadGeometry(data []byte) (*Geometry, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty geometry data", ErrInvalidArgument)
	}
	if err := s.valid(); err != nil {
		return nil, err
	}
	blob := native.Wrap(data)
	out := native.NewBuffer(8)
	err := s.c.Invoke("FMOD_System_LoadGeometry", s.arg(), blob.Ptr(),
		native.IntArg(len(data)), out.Ptr())
	native.Keep(blob)
	if err != nil {
		return nil, err
	}
	h, err := out.Uintptr()
	if err != nil {
		return nil, err
	}
	return &Geometry{object{c: s.c, h: Handle(h)}}, nil
}

// Drivers returns the engine's output device collection.
func (s *System) Drivers() List[DriverInfo] {
	return List[DriverInfo]{ops: driverListOps{s}}
}

// SetSoftwareFormat configures the mixer's sample rate and speaker layout.
// Must be called before Init.
func (s *System) SetSoftwareFormat(sampleRate int, mode SpeakerMode, rawChannels int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidArgument, sampleRate)
	}
	if err := s.valid(); err != nil {
		return err
	}
	return s.c.Invoke("FMOD_System_SetSoftwareFormat", s.arg(),
		native.IntArg(sampleRate), native.IntArg(int(mode)), native.IntArg(rawChannels))
}

// SoftwareFormat reports the mixer's configured format.
func (s *System) SoftwareFormat() (sampleRate int, mode SpeakerMode, rawChannels int, err error) {
	if err := s.valid(); err != nil {
		return 0, 0, 0, err
	}
	buf := native.NewBuffer(12)
	if err := s.c.Invoke("FMOD_System_GetSoftwareFormat", s.arg(),
		buf.Ptr(), buf.Ptr()+4, buf.Ptr()+8); err != nil {
		return 0, 0, 0, err
	}
	r, err := buf.Int32()
	if err != nil {
		return 0, 0, 0, err
	}
	m, err := buf.Int32()
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := buf.Int32()
	return int(r), SpeakerMode(m), int(c), err
}

// Set3DSettings tunes the global doppler, distance and rolloff scales used
// by the positional mixer.
func (s *System) Set3DSettings(dopplerScale, distanceFactor, rolloffScale float32) error {
	if err := s.valid(); err != nil {
		return err
	}
	return s.c.Invoke("FMOD_System_Set3DSettings", s.arg(),
		native.FloatArg(dopplerScale), native.FloatArg(distanceFactor), native.FloatArg(rolloffScale))
}

// SetGeometrySettings sets the maximum world size for occlusion geometry.
func (s *System) SetGeometrySettings(maxWorldSize float32) error {
	if maxWorldSize <= 0 {
		return fmt.Errorf("%w: max world size %v must be positive", ErrInvalidArgument, maxWorldSize)
	}
	if err := s.valid(); err != nil {
		return err
	}
	return s.c.Invoke("FMOD_System_SetGeometrySettings", s.arg(), native.FloatArg(maxWorldSize))
}

// GeometrySettings returns the configured maximum world size.
func (s *System) GeometrySettings() (float32, error) {
	return s.getFloat32("FMOD_System_GetGeometrySettings")
}

// CPUUsage reports the engine's per-subsystem CPU load.
func (s *System) CPUUsage() (CPUUsage, error) {
	if err := s.valid(); err != nil {
		return CPUUsage{}, err
	}
	buf := native.NewBuffer(cpuUsageSize)
	if err := s.c.Invoke("FMOD_System_GetCPUUsage", s.arg(), buf.Ptr()); err != nil {
		return CPUUsage{}, err
	}
	return decodeCPUUsage(buf)
}

// LockDSP blocks until the engine's mixer thread is suspended, giving the
// caller exclusive access to the DSP graph. Must be paired with UnlockDSP;
// prefer WithLockedDSP, which cannot leak the lock.
func (s *System) LockDSP() error {
	if err := s.valid(); err != nil {
		return err
	}
	return s.c.Invoke("FMOD_System_LockDSP", s.arg())
}

// UnlockDSP resumes the mixer thread.
func (s *System) UnlockDSP() error {
	if err := s.valid(); err != nil {
		return err
	}
	return s.c.Invoke("FMOD_System_UnlockDSP", s.arg())
}

// WithLockedDSP runs fn with the mixer thread suspended and issues exactly
// one unlock on every exit path, including when fn returns an error or
// panics. fn's error wins over an unlock failure.
func (s *System) WithLockedDSP(fn func() error) (err error) {
	if err := s.LockDSP(); err != nil {
		return err
	}
	defer func() {
		if uerr := s.UnlockDSP(); uerr != nil && err == nil {
			err = uerr
		}
	}()
	return fn()
}
