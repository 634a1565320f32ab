package taglib

import "fmt"

// InvalidPathError is returned by Open when the path is not valid UTF-8
// and therefore cannot be handed to the engine as text.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%q: path is not valid UTF-8", e.Path)
}

// NulByteError is returned when text contains an embedded NUL byte. The
// engine transport is NUL-terminated, so such text cannot be carried.
//
// It is returned by Open (for paths) and by the string setters (for
// field values). What names the offending value ("path", "title", ...).
type NulByteError struct {
	What     string
	Position int
}

func (e *NulByteError) Error() string {
	return fmt.Sprintf("%s contains NUL byte at position %d", e.What, e.Position)
}

// OpenError is returned by Open when the engine produces no file
// resource: the file is missing, unreadable, or unrecognizable at the
// byte level.
type OpenError struct {
	Path   string
	Reason string
}

func (e *OpenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: open failed: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("%s: open failed", e.Path)
}

// InvalidTagFileError is returned by Open when the file was readable
// but the container holds no usable tag structure. The half-open engine
// resource is released before Open returns; nothing leaks on this path.
type InvalidTagFileError struct {
	Path string
}

func (e *InvalidTagFileError) Error() string {
	return fmt.Sprintf("%s: no usable tag structure", e.Path)
}

// SaveError is returned by Save when the engine's persist call reports
// failure. The file remains open and valid; callers may retry.
type SaveError struct {
	Path string
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("%s: save failed", e.Path)
}

// DecodeError is returned by a string accessor when the engine's buffer
// for that field is not valid UTF-8. Other fields remain readable; the
// raw bytes are preserved for diagnosis.
type DecodeError struct {
	Field string
	Raw   []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: field is not valid UTF-8 (%d bytes)", e.Field, len(e.Raw))
}
