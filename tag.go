package taglib

import (
	"strings"
	"unicode/utf8"

	"github.com/simonhull/taglib/internal/engine"
)

// Tag is a view over the metadata record of an open File.
//
// Tag holds no ownership: it borrows engine state owned by the File it
// came from and is valid only while that File is open. It is created
// once, during Open, and never exists detached from a live File.
//
// String accessors return the decoded field value, or a *DecodeError
// when the engine's bytes for that field are not valid UTF-8. A decode
// failure is confined to that field; every other field stays readable.
// An absent or empty field is the empty string, not an error.
//
// Numeric accessors report absence through their second result: the
// engine encodes "unset" as zero, which never surfaces as a value.
type Tag struct {
	eng engine.Engine
	ref engine.TagRef
}

// Title returns the title field.
func (t *Tag) Title() (string, error) {
	return t.readString(engine.FieldTitle)
}

// Artist returns the artist field.
func (t *Tag) Artist() (string, error) {
	return t.readString(engine.FieldArtist)
}

// Album returns the album field.
func (t *Tag) Album() (string, error) {
	return t.readString(engine.FieldAlbum)
}

// Comment returns the comment field.
func (t *Tag) Comment() (string, error) {
	return t.readString(engine.FieldComment)
}

// Genre returns the genre field.
func (t *Tag) Genre() (string, error) {
	return t.readString(engine.FieldGenre)
}

// Year returns the year field, or false when it is unset.
func (t *Tag) Year() (uint, bool) {
	return t.readUint(engine.FieldYear)
}

// Track returns the track number, or false when it is unset.
func (t *Tag) Track() (uint, bool) {
	return t.readUint(engine.FieldTrack)
}

// BPM returns the tempo in beats per minute, or false when it is unset.
func (t *Tag) BPM() (uint, bool) {
	return t.readUint(engine.FieldBPM)
}

// SetTitle sets the title field.
//
// Returns *NulByteError if title contains an embedded NUL byte; no
// engine call is made in that case. The engine copies the value
// internally, so title may be discarded once SetTitle returns.
func (t *Tag) SetTitle(title string) error {
	return t.writeString(engine.FieldTitle, title)
}

// SetArtist sets the artist field. Same contract as SetTitle.
func (t *Tag) SetArtist(artist string) error {
	return t.writeString(engine.FieldArtist, artist)
}

// SetAlbum sets the album field. Same contract as SetTitle.
func (t *Tag) SetAlbum(album string) error {
	return t.writeString(engine.FieldAlbum, album)
}

// SetComment sets the comment field. Same contract as SetTitle.
func (t *Tag) SetComment(comment string) error {
	return t.writeString(engine.FieldComment, comment)
}

// SetGenre sets the genre field. Same contract as SetTitle.
func (t *Tag) SetGenre(genre string) error {
	return t.writeString(engine.FieldGenre, genre)
}

// SetYear sets the year field.
//
// Zero clears the field. The engine cannot distinguish "clear" from
// "set to zero"; a cleared field reads back as unset. This limitation
// is inherited from the engine, not resolved here.
func (t *Tag) SetYear(year uint) {
	t.eng.WriteUint(t.ref, engine.FieldYear, year)
}

// SetTrack sets the track number. Zero clears the field, with the same
// ambiguity as SetYear.
func (t *Tag) SetTrack(track uint) {
	t.eng.WriteUint(t.ref, engine.FieldTrack, track)
}

// readString runs the marshalling protocol for one text field: read the
// engine's transient buffer, copy its bytes, release the buffer exactly
// once on every path, then validate. The buffer is never touched after
// release, and a decode failure still releases it.
func (t *Tag) readString(field engine.StringField) (string, error) {
	buf := t.eng.ReadString(t.ref, field)
	defer t.eng.FreeBuffer(buf)

	raw := t.eng.BufferBytes(buf)
	if !utf8.Valid(raw) {
		return "", &DecodeError{Field: field.String(), Raw: raw}
	}
	return string(raw), nil
}

func (t *Tag) writeString(field engine.StringField, value string) error {
	if i := strings.IndexByte(value, 0); i >= 0 {
		return &NulByteError{What: field.String(), Position: i}
	}
	t.eng.WriteString(t.ref, field, value)
	return nil
}

// readUint maps the engine's zero sentinel to absence at the boundary,
// so it never leaks into callers as a literal value.
func (t *Tag) readUint(field engine.UintField) (uint, bool) {
	v := t.eng.ReadUint(t.ref, field)
	if v == 0 {
		return 0, false
	}
	return v, true
}
