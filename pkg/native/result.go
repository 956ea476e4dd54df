package native

import "fmt"

// Result mirrors FMOD_RESULT, the status code returned by every engine
// function. Names follow the C enum so errors are greppable against the
// engine's documentation.
type Result int32

const (
	OK Result = iota
	ERR_BADCOMMAND
	ERR_CHANNEL_ALLOC
	ERR_CHANNEL_STOLEN
	ERR_DMA
	ERR_DSP_CONNECTION
	ERR_DSP_DONTPROCESS
	ERR_DSP_FORMAT
	ERR_DSP_INUSE
	ERR_DSP_NOTFOUND
	ERR_DSP_RESERVED
	ERR_DSP_SILENCE
	ERR_DSP_TYPE
	ERR_FILE_BAD
	ERR_FILE_COULDNOTSEEK
	ERR_FILE_DISKEJECTED
	ERR_FILE_EOF
	ERR_FILE_ENDOFDATA
	ERR_FILE_NOTFOUND
	ERR_FORMAT
	ERR_HEADER_MISMATCH
	ERR_HTTP
	ERR_HTTP_ACCESS
	ERR_HTTP_PROXY_AUTH
	ERR_HTTP_SERVER_ERROR
	ERR_HTTP_TIMEOUT
	ERR_INITIALIZATION
	ERR_INITIALIZED
	ERR_INTERNAL
	ERR_INVALID_FLOAT
	ERR_INVALID_HANDLE
	ERR_INVALID_PARAM
	ERR_INVALID_POSITION
	ERR_INVALID_SPEAKER
	ERR_INVALID_SYNCPOINT
	ERR_INVALID_THREAD
	ERR_INVALID_VECTOR
	ERR_MAXAUDIBLE
	ERR_MEMORY
	ERR_MEMORY_CANTPOINT
	ERR_NEEDS3D
	ERR_NEEDSHARDWARE
	ERR_NET_CONNECT
	ERR_NET_SOCKET_ERROR
	ERR_NET_URL
	ERR_NET_WOULD_BLOCK
	ERR_NOTREADY
	ERR_OUTPUT_ALLOCATED
	ERR_OUTPUT_CREATEBUFFER
	ERR_OUTPUT_DRIVERCALL
	ERR_OUTPUT_FORMAT
	ERR_OUTPUT_INIT
	ERR_OUTPUT_NODRIVERS
	ERR_PLUGIN
	ERR_PLUGIN_MISSING
	ERR_PLUGIN_RESOURCE
	ERR_PLUGIN_VERSION
	ERR_RECORD
	ERR_REVERB_CHANNELGROUP
	ERR_REVERB_INSTANCE
	ERR_SUBSOUNDS
	ERR_SUBSOUND_ALLOCATED
	ERR_SUBSOUND_CANTMOVE
	ERR_TAGNOTFOUND
	ERR_TOOMANYCHANNELS
	ERR_TRUNCATED
	ERR_UNIMPLEMENTED
	ERR_UNINITIALIZED
	ERR_UNSUPPORTED
	ERR_VERSION
	ERR_EVENT_ALREADY_LOADED
	ERR_EVENT_LIVEUPDATE_BUSY
	ERR_EVENT_LIVEUPDATE_MISMATCH
	ERR_EVENT_LIVEUPDATE_TIMEOUT
	ERR_EVENT_NOTFOUND
	ERR_STUDIO_UNINITIALIZED
	ERR_STUDIO_NOT_LOADED
	ERR_INVALID_STRING
	ERR_ALREADY_LOCKED
	ERR_NOT_LOCKED
	ERR_RECORD_DISCONNECTED
	ERR_TOOMANYSAMPLES
)

var resultStrings = map[Result]string{
	OK:                       "no errors",
	ERR_BADCOMMAND:           "command issued on an object this command cannot operate on",
	ERR_CHANNEL_ALLOC:        "could not allocate a channel",
	ERR_CHANNEL_STOLEN:       "channel handle refers to a channel that has been stolen",
	ERR_DMA:                  "DMA failure",
	ERR_DSP_CONNECTION:       "DSP connection error",
	ERR_DSP_DONTPROCESS:      "DSP callback requested not to process",
	ERR_DSP_FORMAT:           "DSP connection format mismatch",
	ERR_DSP_INUSE:            "DSP is still in use by the mixer",
	ERR_DSP_NOTFOUND:         "DSP unit not found",
	ERR_DSP_RESERVED:         "DSP unit is reserved by the system",
	ERR_DSP_SILENCE:          "DSP callback requested silence",
	ERR_DSP_TYPE:             "operation cannot be performed on this DSP type",
	ERR_FILE_BAD:             "error loading file",
	ERR_FILE_COULDNOTSEEK:    "media cannot be seeked",
	ERR_FILE_DISKEJECTED:     "media was ejected while reading",
	ERR_FILE_EOF:             "end of file unexpectedly reached",
	ERR_FILE_ENDOFDATA:       "end of current chunk reached",
	ERR_FILE_NOTFOUND:        "file not found",
	ERR_FORMAT:               "unsupported file or audio format",
	ERR_HEADER_MISMATCH:      "version mismatch between binary and header",
	ERR_HTTP:                 "HTTP error",
	ERR_HTTP_ACCESS:          "file on the HTTP server could not be accessed",
	ERR_HTTP_PROXY_AUTH:      "proxy authentication required",
	ERR_HTTP_SERVER_ERROR:    "HTTP server internal error",
	ERR_HTTP_TIMEOUT:         "HTTP timeout",
	ERR_INITIALIZATION:       "error initializing output device",
	ERR_INITIALIZED:          "cannot call this command after System::init",
	ERR_INTERNAL:             "internal engine error",
	ERR_INVALID_FLOAT:        "invalid floating point value",
	ERR_INVALID_HANDLE:       "invalid object handle",
	ERR_INVALID_PARAM:        "invalid parameter",
	ERR_INVALID_POSITION:     "invalid seek position",
	ERR_INVALID_SPEAKER:      "invalid speaker for this speaker mode",
	ERR_INVALID_SYNCPOINT:    "sync point is not from this sound",
	ERR_INVALID_THREAD:       "called from an unsupported thread",
	ERR_INVALID_VECTOR:       "vectors are not unit length or perpendicular",
	ERR_MAXAUDIBLE:           "reached maximum audible playback count",
	ERR_MEMORY:               "not enough memory or resources",
	ERR_MEMORY_CANTPOINT:     "cannot use OPENMEMORY_POINT on this source",
	ERR_NEEDS3D:              "operation requires a 3D sound",
	ERR_NEEDSHARDWARE:        "operation requires hardware support",
	ERR_NET_CONNECT:          "could not connect to remote host",
	ERR_NET_SOCKET_ERROR:     "socket error",
	ERR_NET_URL:              "URL could not be resolved",
	ERR_NET_WOULD_BLOCK:      "operation on a non-blocking socket would block",
	ERR_NOTREADY:             "operation could not complete yet",
	ERR_OUTPUT_ALLOCATED:     "output device is already in use",
	ERR_OUTPUT_CREATEBUFFER:  "could not create output buffer",
	ERR_OUTPUT_DRIVERCALL:    "output driver call failed",
	ERR_OUTPUT_FORMAT:        "sound format not supported by output device",
	ERR_OUTPUT_INIT:          "output device could not be initialized",
	ERR_OUTPUT_NODRIVERS:     "no output drivers available",
	ERR_PLUGIN:               "unspecified plugin error",
	ERR_PLUGIN_MISSING:       "requested plugin is not loaded",
	ERR_PLUGIN_RESOURCE:      "plugin resource missing",
	ERR_PLUGIN_VERSION:       "plugin version unsupported",
	ERR_RECORD:               "recording error",
	ERR_REVERB_CHANNELGROUP:  "reverb is attached to another channel group",
	ERR_REVERB_INSTANCE:      "reverb instance does not exist",
	ERR_SUBSOUNDS:            "inconsistent subsound state",
	ERR_SUBSOUND_ALLOCATED:   "subsound already in use",
	ERR_SUBSOUND_CANTMOVE:    "cannot move a subsound file",
	ERR_TAGNOTFOUND:          "tag not found",
	ERR_TOOMANYCHANNELS:      "too many channels for this speaker mode",
	ERR_TRUNCATED:            "supplied buffer was too small, data truncated",
	ERR_UNIMPLEMENTED:        "feature not implemented in this engine build",
	ERR_UNINITIALIZED:        "System::init has not been called",
	ERR_UNSUPPORTED:          "unsupported function for this output mode",
	ERR_VERSION:              "version mismatch with engine library",
	ERR_EVENT_ALREADY_LOADED: "event data already loaded",
	ERR_INVALID_STRING:       "invalid string (not null terminated or bad encoding)",
	ERR_ALREADY_LOCKED:       "object is already locked",
	ERR_NOT_LOCKED:           "object is not locked",
	ERR_RECORD_DISCONNECTED:  "recording driver was disconnected",
	ERR_TOOMANYSAMPLES:       "sound contains too many samples",
}

// String returns the engine's human-readable description for a status code.
func (r Result) String() string {
	if s, ok := resultStrings[r]; ok {
		return s
	}
	return fmt.Sprintf("unknown error (%d)", int32(r))
}

// Error reports a non-success status from an engine call. It carries the
// symbol that failed and the raw engine status so callers can match on
// specific codes with errors.As.
type Error struct {
	Symbol string
	Code   Result
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (FMOD_RESULT %d)", e.Symbol, e.Code, int32(e.Code))
}

// Err converts a status code into an error for the given symbol, or nil for OK.
func (r Result) Err(symbol string) error {
	if r == OK {
		return nil
	}
	return &Error{Symbol: symbol, Code: r}
}
