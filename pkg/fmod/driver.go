package fmod

import "github.com/fmodgo/fmodgo/pkg/native"

// SpeakerMode identifies a speaker layout (FMOD_SPEAKERMODE).
type SpeakerMode int32

const (
	SpeakerModeDefault SpeakerMode = iota
	SpeakerModeRaw
	SpeakerModeMono
	SpeakerModeStereo
	SpeakerModeQuad
	SpeakerModeSurround
	SpeakerMode5Point1
	SpeakerMode7Point1
	SpeakerMode7Point1Point4
)

func (m SpeakerMode) String() string {
	switch m {
	case SpeakerModeDefault:
		return "default"
	case SpeakerModeRaw:
		return "raw"
	case SpeakerModeMono:
		return "mono"
	case SpeakerModeStereo:
		return "stereo"
	case SpeakerModeQuad:
		return "quad"
	case SpeakerModeSurround:
		return "surround"
	case SpeakerMode5Point1:
		return "5.1"
	case SpeakerMode7Point1:
		return "7.1"
	case SpeakerMode7Point1Point4:
		return "7.1.4"
	default:
		return "unknown"
	}
}

// DriverInfo describes one output device known to the engine. The engine
// reports the name as a fixed-width NUL-padded field; Name carries the
// decoded value.
type DriverInfo struct {
	Name       string
	GUID       [16]byte
	SystemRate int
	Mode       SpeakerMode
	Channels   int
}

const driverNameLen = 256

// driverListOps binds the read-only collection adapter to the engine's
// output device table. The set of devices changes as hardware comes and
// goes, which is why the count is never cached.
type driverListOps struct {
	s *System
}

func (o driverListOps) count() (int, error) {
	n, err := o.s.getInt32("FMOD_System_GetNumDrivers")
	return int(n), err
}

func (o driverListOps) at(index int) (DriverInfo, error) {
	var info DriverInfo
	if err := o.s.valid(); err != nil {
		return info, err
	}
	name := native.NewBuffer(driverNameLen)
	rest := native.NewBuffer(16 + 4 + 4 + 4) // guid, rate, mode, channels
	err := o.s.c.Invoke("FMOD_System_GetDriverInfo", o.s.arg(), native.IntArg(index),
		name.Ptr(), native.IntArg(name.Len()),
		rest.Ptr(), rest.Ptr()+16, rest.Ptr()+20, rest.Ptr()+24)
	if err != nil {
		return info, err
	}
	if info.Name, err = name.String(name.Len()); err != nil {
		return info, err
	}
	guid, err := rest.TakeBytes(16)
	if err != nil {
		return info, err
	}
	copy(info.GUID[:], guid)
	rate, err := rest.Int32()
	if err != nil {
		return info, err
	}
	info.SystemRate = int(rate)
	mode, err := rest.Int32()
	if err != nil {
		return info, err
	}
	info.Mode = SpeakerMode(mode)
	ch, err := rest.Int32()
	info.Channels = int(ch)
	return info, err
}
