package enginetest

import (
	"path/filepath"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// modeIgnoreTags matches FMOD_IGNORETAGS.
const modeIgnoreTags = 0x02000000

type soundState struct {
	sys         uintptr
	name        string
	typ         int32
	format      int32
	channels    int32
	bits        int32
	rate        int32
	frames      uint32
	lengthMS    uint32
	defPriority int32
	tags        []*tagState
	updated     int
}

// tagState pins the name and payload bytes so the record the engine hands
// out can point into them.
type tagState struct {
	Tag
	nameBuf []byte
	updated bool
}

func newTagState(t Tag) *tagState {
	return &tagState{Tag: t, nameBuf: append([]byte(t.Name), 0), updated: true}
}

func (e *Engine) createSound(sysHandle uintptr, args []uintptr) native.Result {
	path := argString(args[1])
	info, r := probeFile(path)
	if r != native.OK {
		return r
	}
	snd := &soundState{
		sys:         sysHandle,
		name:        filepath.Base(path),
		typ:         info.typ,
		format:      info.format,
		channels:    info.channels,
		bits:        info.bits,
		rate:        info.rate,
		frames:      info.frames,
		defPriority: 128,
	}
	if info.rate > 0 {
		snd.lengthMS = uint32(uint64(info.frames) * 1000 / uint64(info.rate))
	}
	if uint32(args[2])&modeIgnoreTags == 0 {
		for _, t := range e.TagsByPath[path] {
			snd.tags = append(snd.tags, newTagState(t))
			snd.updated++
		}
	}
	h := e.handle()
	e.sounds[h] = snd
	putHandle(args[4], h)
	return native.OK
}

func (e *Engine) soundCall(op string, args []uintptr) native.Result {
	snd, ok := e.sounds[args[0]]
	if !ok {
		return native.ERR_INVALID_HANDLE
	}
	switch op {
	case "GetName":
		putString(args[1], argInt(args[2]), snd.name)
		return native.OK
	case "GetLength":
		switch uint32(args[2]) {
		case 0x1: // ms
			putUint32(args[1], snd.lengthMS)
		case 0x2: // pcm
			putUint32(args[1], snd.frames)
		case 0x4: // pcm bytes
			putUint32(args[1], snd.frames*uint32(snd.channels)*uint32(snd.bits)/8)
		default:
			return native.ERR_UNSUPPORTED
		}
		return native.OK
	case "GetFormat":
		putInt32(args[1], snd.typ)
		putInt32(args[2], snd.format)
		putInt32(args[3], snd.channels)
		putInt32(args[4], snd.bits)
		return native.OK
	case "GetDefaults":
		putFloat32(args[1], float32(snd.rate))
		putInt32(args[2], snd.defPriority)
		return native.OK
	case "GetNumTags":
		putInt32(args[1], int32(len(snd.tags)))
		putInt32(args[2], int32(snd.updated))
		return native.OK
	case "GetTag":
		return snd.getTag(args)
	case "Release":
		delete(e.sounds, args[0])
		return native.OK
	default:
		return native.ERR_UNIMPLEMENTED
	}
}

func (s *soundState) getTag(args []uintptr) native.Result {
	index := argInt(args[2])
	var t *tagState
	if args[1] != 0 {
		name := argString(args[1])
		n := 0
		for _, cand := range s.tags {
			if cand.Name == name {
				if n == index {
					t = cand
					break
				}
				n++
			}
		}
	} else if index >= 0 && index < len(s.tags) {
		t = s.tags[index]
	}
	if t == nil {
		return native.ERR_TAGNOTFOUND
	}
	s.writeTag(args[3], t)
	return native.OK
}

// writeTag lays the record out the way FMOD_TAG sits in memory on 64-bit
// platforms and clears the tag's updated flag, which is a read side effect
// in the real engine too.
func (s *soundState) writeTag(p uintptr, t *tagState) {
	putInt32(p, t.Type)
	putInt32(p+4, t.DataType)
	putHandle(p+8, bytesPtr(t.nameBuf))
	putHandle(p+16, bytesPtr(t.Data))
	putUint32(p+24, uint32(len(t.Data)))
	putBool(p+28, t.updated)
	if t.updated {
		t.updated = false
		s.updated--
	}
}

// PublishTag attaches or refreshes a metadata tag on an existing sound, the
// way streamed metadata arrives mid-playback. A tag with the same name is
// updated in place; otherwise the tag is appended.
func (e *Engine) PublishTag(sound uintptr, t Tag) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	snd, ok := e.sounds[sound]
	if !ok {
		return false
	}
	for _, cand := range snd.tags {
		if cand.Name == t.Name && cand.Type == t.Type {
			cand.Tag = t
			cand.nameBuf = append([]byte(t.Name), 0)
			if !cand.updated {
				cand.updated = true
				snd.updated++
			}
			return true
		}
	}
	snd.tags = append(snd.tags, newTagState(t))
	snd.updated++
	return true
}
