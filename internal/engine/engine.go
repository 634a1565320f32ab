// Package engine defines the boundary to the native tag-parsing engine.
//
// The engine hands back raw, non-owning resources: file handles, tag
// handles, and manually managed string buffers. Nothing in this package
// enforces lifetimes - that is the job of the public taglib package,
// which wraps these refs in ownership types. Code outside internal/
// never sees a ref.
package engine

// FileRef is an opaque handle to an open file inside the engine.
//
// A FileRef obtained from Open must be released with exactly one call
// to FreeFile, including when Valid reports the file unusable.
type FileRef uintptr

// TagRef is an opaque handle to the metadata record of an open file.
//
// A TagRef is bound 1:1 to the FileRef it was obtained from and becomes
// invalid the moment that FileRef is freed. It is never freed on its own.
type TagRef uintptr

// PropsRef is an opaque handle to the audio properties of an open file.
// Same lifetime contract as TagRef.
type PropsRef uintptr

// Buffer is an opaque handle to a transient, engine-owned string buffer.
//
// Every Buffer returned by ReadString must be released with exactly one
// call to FreeBuffer, whether or not its bytes decoded cleanly.
type Buffer uintptr

// StringField identifies a text metadata field.
type StringField int

const (
	FieldTitle StringField = iota
	FieldArtist
	FieldAlbum
	FieldComment
	FieldGenre
)

// String returns the field name as it appears in error messages.
func (f StringField) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldArtist:
		return "artist"
	case FieldAlbum:
		return "album"
	case FieldComment:
		return "comment"
	case FieldGenre:
		return "genre"
	default:
		return "unknown"
	}
}

// UintField identifies a numeric metadata field. The engine encodes
// "field absent" as zero for all of these.
type UintField int

const (
	FieldYear UintField = iota
	FieldTrack
	FieldBPM
)

func (f UintField) String() string {
	switch f {
	case FieldYear:
		return "year"
	case FieldTrack:
		return "track"
	case FieldBPM:
		return "bpm"
	default:
		return "unknown"
	}
}

// Prop identifies a technical audio property.
type Prop int

const (
	PropLength Prop = iota // seconds
	PropBitrate
	PropSampleRate
	PropChannels
)

// FileType is the engine's container-format hint, mirroring TagLib's
// file-type constants. Zero is "detect from content".
type FileType int

const (
	TypeAuto FileType = iota
	TypeMPEG
	TypeOggVorbis
	TypeFLAC
	TypeMPC
	TypeOggFLAC
	TypeWavPack
	TypeSpeex
	TypeTrueAudio
	TypeMP4
	TypeASF
)

// Engine is the set of operations the native library exposes.
//
// Implementations must put the engine's string-management mode into
// caller-managed at construction time, before any call is made. Engines
// are safe for use from multiple goroutines only across distinct
// FileRefs; a single FileRef and its TagRef must be confined to one
// goroutine at a time.
type Engine interface {
	// Open opens the file at path. The second result is false when the
	// engine could not produce a resource (missing file, unreadable,
	// unrecognized at the byte level). path must be NUL-free UTF-8.
	Open(path string) (FileRef, bool)

	// OpenType is Open with an explicit container-format hint instead
	// of content detection.
	OpenType(path string, typ FileType) (FileRef, bool)

	// Valid reports whether the opened container holds a usable tag
	// structure. A FileRef that fails Valid must still be freed.
	Valid(f FileRef) bool

	// Tag returns the metadata record bound to f. Never fails for a
	// valid FileRef.
	Tag(f FileRef) TagRef

	// Properties returns the audio properties record bound to f.
	Properties(f FileRef) PropsRef

	// Save persists in-memory tag changes to disk. Returns false on
	// failure; the FileRef remains open and valid either way.
	Save(f FileRef) bool

	// FreeFile releases f. Exactly once per opened FileRef.
	FreeFile(f FileRef)

	// ReadString reads a text field into a transient engine-owned
	// buffer. The caller must release it via FreeBuffer.
	ReadString(t TagRef, field StringField) Buffer

	// BufferBytes copies the buffer's bytes (up to the engine's
	// terminator) into Go-owned memory. No validation is performed.
	BufferBytes(b Buffer) []byte

	// FreeBuffer releases a buffer obtained from ReadString. Exactly
	// once per buffer, even when its bytes failed to decode.
	FreeBuffer(b Buffer)

	// WriteString sets a text field. value must be NUL-free; the engine
	// copies it internally before returning. Infallible given valid
	// input.
	WriteString(t TagRef, field StringField, value string)

	// ReadUint reads a numeric field. Zero means the field is unset.
	ReadUint(t TagRef, field UintField) uint

	// WriteUint sets a numeric field. Zero clears it.
	WriteUint(t TagRef, field UintField, value uint)

	// ReadProp reads a technical audio property.
	ReadProp(p PropsRef, prop Prop) int
}

// defaultEngine is the process-wide engine, registered once at init time
// by the implementation package that is linked into the build.
var defaultEngine Engine

// Register installs e as the default engine. Called from an
// implementation package's init function, before main runs; never
// afterward.
func Register(e Engine) {
	defaultEngine = e
}

// Default returns the registered engine, or nil when no implementation
// is linked into the build (for example a cgo-less build).
func Default() Engine {
	return defaultEngine
}
