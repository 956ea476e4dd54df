package fmod

import (
	"encoding/binary"
	"math"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// TagType identifies where a metadata tag came from (FMOD_TAGTYPE).
type TagType int32

const (
	TagTypeUnknown TagType = iota
	TagTypeID3V1
	TagTypeID3V2
	TagTypeVorbisComment
	TagTypeShoutcast
	TagTypeIcecast
	TagTypeASF
	TagTypeMIDI
	TagTypePlaylist
	TagTypeFmod
	TagTypeUser
)

// TagDataType identifies how a tag's payload is encoded (FMOD_TAGDATATYPE).
type TagDataType int32

const (
	TagDataTypeBinary TagDataType = iota
	TagDataTypeInt
	TagDataTypeFloat
	TagDataTypeString
	TagDataTypeStringUTF16
	TagDataTypeStringUTF16BE
	TagDataTypeStringUTF8
)

// Tag is one piece of metadata attached to a Sound. Tags have no engine
// identity of their own: a Tag is a copy of what the engine held at its
// index when it was read, and streaming sounds re-publish tags as new
// metadata arrives (Updated marks a tag read for the first time since it
// changed).
type Tag struct {
	Name     string
	Type     TagType
	DataType TagDataType
	Data     []byte
	Updated  bool
}

// Boundary layout of FMOD_TAG on 64-bit platforms.
const tagRecordSize = 32

func decodeTag(buf *native.Buffer) (Tag, error) {
	var t Tag
	v, err := buf.Int32()
	if err != nil {
		return t, err
	}
	t.Type = TagType(v)
	if v, err = buf.Int32(); err != nil {
		return t, err
	}
	t.DataType = TagDataType(v)
	namePtr, err := buf.Uintptr()
	if err != nil {
		return t, err
	}
	dataPtr, err := buf.Uintptr()
	if err != nil {
		return t, err
	}
	dataLen, err := buf.Uint32()
	if err != nil {
		return t, err
	}
	updated, err := buf.Int32()
	if err != nil {
		return t, err
	}
	t.Name = native.CString(namePtr)
	t.Data = native.CopyBytes(dataPtr, int(dataLen))
	t.Updated = updated != 0
	return t, nil
}

// StringValue renders the payload as a string for the textual data types,
// and "" otherwise. UTF-16 payloads are not transcoded; use Data directly.
func (t Tag) StringValue() string {
	switch t.DataType {
	case TagDataTypeString, TagDataTypeStringUTF8:
		b := t.Data
		for i, c := range b {
			if c == 0 {
				b = b[:i]
				break
			}
		}
		return string(b)
	default:
		return ""
	}
}

// IntValue decodes an integer payload, tolerating the 4- and 8-byte widths
// the engine emits.
func (t Tag) IntValue() (int64, bool) {
	if t.DataType != TagDataTypeInt {
		return 0, false
	}
	switch len(t.Data) {
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(t.Data))), true
	case 8:
		return int64(binary.LittleEndian.Uint64(t.Data)), true
	default:
		return 0, false
	}
}

// FloatValue decodes a floating point payload.
func (t Tag) FloatValue() (float64, bool) {
	if t.DataType != TagDataTypeFloat {
		return 0, false
	}
	switch len(t.Data) {
	case 4:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(t.Data))), true
	case 8:
		return math.Float64frombits(binary.LittleEndian.Uint64(t.Data)), true
	default:
		return 0, false
	}
}
