package fmod

import "github.com/fmodgo/fmodgo/pkg/native"

// SoundType identifies the codec the engine chose for a sound
// (FMOD_SOUND_TYPE).
type SoundType int32

const (
	SoundTypeUnknown SoundType = iota
	SoundTypeAIFF
	SoundTypeASF
	SoundTypeDLS
	SoundTypeFLAC
	SoundTypeFSB
	SoundTypeIT
	SoundTypeMIDI
	SoundTypeMOD
	SoundTypeMPEG
	SoundTypeOggVorbis
	SoundTypePlaylist
	SoundTypeRaw
	SoundTypeS3M
	SoundTypeUser
	SoundTypeWAV
	SoundTypeXM
	SoundTypeXMA
	SoundTypeAudioQueue
	SoundTypeAT9
	SoundTypeVorbis
	SoundTypeMediaFoundation
	SoundTypeMediaCodec
	SoundTypeFADPCM
	SoundTypeOpus
)

// SoundFormat identifies the sample representation (FMOD_SOUND_FORMAT).
type SoundFormat int32

const (
	SoundFormatNone SoundFormat = iota
	SoundFormatPCM8
	SoundFormatPCM16
	SoundFormatPCM24
	SoundFormatPCM32
	SoundFormatPCMFloat
	SoundFormatBitstream
)

// FormatInfo describes how the engine decoded a sound.
type FormatInfo struct {
	Type     SoundType
	Format   SoundFormat
	Channels int
	Bits     int
}

// Sound is loaded (or streamed) audio data owned by the engine. Sounds are
// not bound to a channel: one sound can back many playing channels.
type Sound struct {
	object
}

// Equal reports whether both wrappers refer to the same engine sound.
func (s *Sound) Equal(other *Sound) bool {
	return other != nil && s.h == other.h
}

// Name returns the name the engine recorded for the sound, usually the
// base name of the file it was created from.
func (s *Sound) Name() (string, error) {
	if err := s.valid(); err != nil {
		return "", err
	}
	buf := native.NewBuffer(256)
	if err := s.c.Invoke("FMOD_Sound_GetName", s.arg(), buf.Ptr(), native.IntArg(buf.Len())); err != nil {
		return "", err
	}
	return buf.String(buf.Len())
}

// Length returns the sound's length measured in unit.
func (s *Sound) Length(unit TimeUnit) (uint32, error) {
	if err := s.valid(); err != nil {
		return 0, err
	}
	buf := native.NewBuffer(4)
	if err := s.c.Invoke("FMOD_Sound_GetLength", s.arg(), buf.Ptr(), uintptr(unit)); err != nil {
		return 0, err
	}
	return buf.Uint32()
}

// Format reports how the engine decoded the sound.
func (s *Sound) Format() (FormatInfo, error) {
	var info FormatInfo
	if err := s.valid(); err != nil {
		return info, err
	}
	buf := native.NewBuffer(16)
	if err := s.c.Invoke("FMOD_Sound_GetFormat", s.arg(),
		buf.Ptr(), buf.Ptr()+4, buf.Ptr()+8, buf.Ptr()+12); err != nil {
		return info, err
	}
	v, err := buf.Int32()
	if err != nil {
		return info, err
	}
	info.Type = SoundType(v)
	if v, err = buf.Int32(); err != nil {
		return info, err
	}
	info.Format = SoundFormat(v)
	if v, err = buf.Int32(); err != nil {
		return info, err
	}
	info.Channels = int(v)
	if v, err = buf.Int32(); err != nil {
		return info, err
	}
	info.Bits = int(v)
	return info, nil
}

// Defaults returns the frequency and priority the engine assigns to new
// channels playing this sound.
func (s *Sound) Defaults() (frequency float32, priority int, err error) {
	if err := s.valid(); err != nil {
		return 0, 0, err
	}
	buf := native.NewBuffer(8)
	if err := s.c.Invoke("FMOD_Sound_GetDefaults", s.arg(), buf.Ptr(), buf.Ptr()+4); err != nil {
		return 0, 0, err
	}
	if frequency, err = buf.Float32(); err != nil {
		return 0, 0, err
	}
	p, err := buf.Int32()
	return frequency, int(p), err
}

// Tags returns the sound's metadata collection. Like every engine
// collection this is a live view: for streamed sounds the engine appends
// and updates tags on its own as metadata arrives in the stream.
func (s *Sound) Tags() List[Tag] {
	return List[Tag]{ops: tagListOps{s}}
}

// TagCounts reports the total number of tags and how many have been
// updated since they were last read.
func (s *Sound) TagCounts() (total, updated int, err error) {
	if err := s.valid(); err != nil {
		return 0, 0, err
	}
	buf := native.NewBuffer(8)
	if err := s.c.Invoke("FMOD_Sound_GetNumTags", s.arg(), buf.Ptr(), buf.Ptr()+4); err != nil {
		return 0, 0, err
	}
	t, err := buf.Int32()
	if err != nil {
		return 0, 0, err
	}
	u, err := buf.Int32()
	return int(t), int(u), err
}

// TagByName fetches a tag by name. The engine reports ERR_TAGNOTFOUND when
// no tag with the name exists.
func (s *Sound) TagByName(name string) (Tag, error) {
	if err := s.valid(); err != nil {
		return Tag{}, err
	}
	nameBuf := native.Wrap(pathArg(name))
	buf := native.NewBuffer(tagRecordSize)
	err := s.c.Invoke("FMOD_Sound_GetTag", s.arg(), nameBuf.Ptr(), native.IntArg(0), buf.Ptr())
	native.Keep(nameBuf)
	if err != nil {
		return Tag{}, err
	}
	return decodeTag(buf)
}

// Release frees the sound inside the engine and invalidates this wrapper.
func (s *Sound) Release() error {
	if err := s.valid(); err != nil {
		return err
	}
	if err := s.c.Invoke("FMOD_Sound_Release", s.arg()); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// tagListOps binds the read-only collection adapter to a sound's tag table.
type tagListOps struct {
	s *Sound
}

func (o tagListOps) count() (int, error) {
	total, _, err := o.s.TagCounts()
	return total, err
}

func (o tagListOps) at(index int) (Tag, error) {
	if err := o.s.valid(); err != nil {
		return Tag{}, err
	}
	buf := native.NewBuffer(tagRecordSize)
	if err := o.s.c.Invoke("FMOD_Sound_GetTag", o.s.arg(), 0, native.IntArg(index), buf.Ptr()); err != nil {
		return Tag{}, err
	}
	return decodeTag(buf)
}
