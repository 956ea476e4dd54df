package enginetest

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/fmodgo/fmodgo/pkg/native"
)

// FMOD_SOUND_TYPE / FMOD_SOUND_FORMAT values the probe reports.
const (
	soundTypeMPEG      = 9
	soundTypeOggVorbis = 10
	soundTypeWAV       = 15

	soundFormatPCM8  = 1
	soundFormatPCM16 = 2
	soundFormatPCM24 = 3
	soundFormatPCM32 = 4
)

type probeInfo struct {
	typ      int32
	format   int32
	channels int32
	bits     int32
	rate     int32
	frames   uint32
}

// probeFile decodes just enough of the file to report what the real engine
// would after a blocking CreateSound: codec, sample format and length.
func probeFile(path string) (probeInfo, native.Result) {
	f, err := os.Open(path)
	if err != nil {
		return probeInfo{}, native.ERR_FILE_NOTFOUND
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return probeWAV(f)
	case ".mp3":
		return probeMP3(f)
	case ".ogg", ".oga":
		return probeOgg(f)
	default:
		return probeInfo{}, native.ERR_FORMAT
	}
}

func probeWAV(f *os.File) (probeInfo, native.Result) {
	d := wav.NewDecoder(f)
	d.ReadInfo()
	if d.Err() != nil || d.NumChans == 0 || d.SampleRate == 0 {
		return probeInfo{}, native.ERR_FORMAT
	}
	dur, err := d.Duration()
	if err != nil {
		return probeInfo{}, native.ERR_FORMAT
	}
	info := probeInfo{
		typ:      soundTypeWAV,
		channels: int32(d.NumChans),
		bits:     int32(d.BitDepth),
		rate:     int32(d.SampleRate),
		frames:   uint32(uint64(dur) * uint64(d.SampleRate) / uint64(time.Second)),
	}
	switch d.BitDepth {
	case 8:
		info.format = soundFormatPCM8
	case 24:
		info.format = soundFormatPCM24
	case 32:
		info.format = soundFormatPCM32
	default:
		info.format = soundFormatPCM16
	}
	return info, native.OK
}

func probeMP3(f *os.File) (probeInfo, native.Result) {
	d, err := mp3.NewDecoder(f)
	if err != nil {
		return probeInfo{}, native.ERR_FORMAT
	}
	// The decoder always produces 16-bit stereo frames, 4 bytes each.
	return probeInfo{
		typ:      soundTypeMPEG,
		format:   soundFormatPCM16,
		channels: 2,
		bits:     16,
		rate:     int32(d.SampleRate()),
		frames:   uint32(d.Length() / 4),
	}, native.OK
}

func probeOgg(f *os.File) (probeInfo, native.Result) {
	r, err := oggvorbis.NewReader(f)
	if err != nil {
		return probeInfo{}, native.ERR_FORMAT
	}
	frames := r.Length()
	if frames == 0 {
		// Unseekable or unannounced length; count by decoding.
		buf := make([]float32, 2048)
		var samples int64
		for {
			n, err := r.Read(buf)
			samples += int64(n)
			if err == io.EOF {
				break
			}
			if err != nil {
				return probeInfo{}, native.ERR_FORMAT
			}
		}
		frames = samples / int64(r.Channels())
	}
	return probeInfo{
		typ:      soundTypeOggVorbis,
		format:   soundFormatPCM16,
		channels: int32(r.Channels()),
		bits:     16,
		rate:     int32(r.SampleRate()),
		frames:   uint32(frames),
	}, native.OK
}
