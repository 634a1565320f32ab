// Package native implements the engine boundary over TagLib's C API.
//
// Linking requires the taglib C bindings (libtag_c) to be installed.
// The package registers itself as the default engine at init time, so a
// cgo build of the taglib package picks it up automatically.
package native

// #cgo pkg-config: taglib
// #cgo LDFLAGS: -ltag_c
// #include <stdlib.h>
// #include <string.h>
// #include <tag_c.h>
import "C"

import (
	"strconv"
	"unsafe"

	"github.com/simonhull/taglib/internal/engine"
)

func init() {
	// Returned strings are caller-managed: every char* handed back by a
	// read must be released with taglib_free, exactly once. Set before
	// any file can be opened and never changed again.
	C.taglib_set_string_management_enabled(0)

	engine.Register(Engine{})
}

// Engine is the TagLib-backed implementation of engine.Engine.
//
// Tag refs carry the file pointer rather than the TagLib_Tag pointer:
// the C property API (used for fields tag_c has no accessor for, such
// as BPM) takes the file handle, so the tag pointer is resolved per
// call through taglib_file_tag, which is a constant-time lookup.
type Engine struct{}

var _ engine.Engine = Engine{}

func (Engine) Open(path string) (engine.FileRef, bool) {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))

	fp := C.taglib_file_new(cs)
	if fp == nil {
		return 0, false
	}
	return engine.FileRef(uintptr(unsafe.Pointer(fp))), true
}

func (Engine) OpenType(path string, typ engine.FileType) (engine.FileRef, bool) {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))

	fp := C.taglib_file_new_type(cs, fileType(typ))
	if fp == nil {
		return 0, false
	}
	return engine.FileRef(uintptr(unsafe.Pointer(fp))), true
}

func (Engine) Valid(f engine.FileRef) bool {
	return C.taglib_file_is_valid(filePtr(f)) != 0
}

func (Engine) Tag(f engine.FileRef) engine.TagRef {
	return engine.TagRef(f)
}

func (Engine) Properties(f engine.FileRef) engine.PropsRef {
	return engine.PropsRef(uintptr(unsafe.Pointer(C.taglib_file_audioproperties(filePtr(f)))))
}

func (Engine) Save(f engine.FileRef) bool {
	return C.taglib_file_save(filePtr(f)) != 0
}

func (Engine) FreeFile(f engine.FileRef) {
	C.taglib_file_free(filePtr(f))
}

func (Engine) ReadString(t engine.TagRef, field engine.StringField) engine.Buffer {
	tag := tagPtr(t)

	var cs *C.char
	switch field {
	case engine.FieldTitle:
		cs = C.taglib_tag_title(tag)
	case engine.FieldArtist:
		cs = C.taglib_tag_artist(tag)
	case engine.FieldAlbum:
		cs = C.taglib_tag_album(tag)
	case engine.FieldComment:
		cs = C.taglib_tag_comment(tag)
	case engine.FieldGenre:
		cs = C.taglib_tag_genre(tag)
	}
	return engine.Buffer(uintptr(unsafe.Pointer(cs)))
}

func (Engine) BufferBytes(b engine.Buffer) []byte {
	cs := (*C.char)(unsafe.Pointer(b))
	if cs == nil {
		return nil
	}
	return C.GoBytes(unsafe.Pointer(cs), C.int(C.strlen(cs)))
}

func (Engine) FreeBuffer(b engine.Buffer) {
	if b == 0 {
		return
	}
	C.taglib_free(unsafe.Pointer(b))
}

func (Engine) WriteString(t engine.TagRef, field engine.StringField, value string) {
	tag := tagPtr(t)

	cs := C.CString(value)
	defer C.free(unsafe.Pointer(cs))

	switch field {
	case engine.FieldTitle:
		C.taglib_tag_set_title(tag, cs)
	case engine.FieldArtist:
		C.taglib_tag_set_artist(tag, cs)
	case engine.FieldAlbum:
		C.taglib_tag_set_album(tag, cs)
	case engine.FieldComment:
		C.taglib_tag_set_comment(tag, cs)
	case engine.FieldGenre:
		C.taglib_tag_set_genre(tag, cs)
	}
}

func (e Engine) ReadUint(t engine.TagRef, field engine.UintField) uint {
	tag := tagPtr(t)

	switch field {
	case engine.FieldYear:
		return uint(C.taglib_tag_year(tag))
	case engine.FieldTrack:
		return uint(C.taglib_tag_track(tag))
	case engine.FieldBPM:
		// tag_c has no BPM accessor; go through the property map.
		return propertyUint(filePtr(engine.FileRef(t)), "BPM")
	}
	return 0
}

func (Engine) WriteUint(t engine.TagRef, field engine.UintField, value uint) {
	tag := tagPtr(t)

	switch field {
	case engine.FieldYear:
		C.taglib_tag_set_year(tag, C.uint(value))
	case engine.FieldTrack:
		C.taglib_tag_set_track(tag, C.uint(value))
	case engine.FieldBPM:
		setPropertyUint(filePtr(engine.FileRef(t)), "BPM", value)
	}
}

func (Engine) ReadProp(p engine.PropsRef, prop engine.Prop) int {
	props := (*C.TagLib_AudioProperties)(unsafe.Pointer(p))
	if props == nil {
		return 0
	}
	switch prop {
	case engine.PropLength:
		return int(C.taglib_audioproperties_length(props))
	case engine.PropBitrate:
		return int(C.taglib_audioproperties_bitrate(props))
	case engine.PropSampleRate:
		return int(C.taglib_audioproperties_samplerate(props))
	case engine.PropChannels:
		return int(C.taglib_audioproperties_channels(props))
	}
	return 0
}

func filePtr(f engine.FileRef) *C.TagLib_File {
	return (*C.TagLib_File)(unsafe.Pointer(f))
}

func tagPtr(t engine.TagRef) *C.TagLib_Tag {
	return C.taglib_file_tag(filePtr(engine.FileRef(t)))
}

// propertyUint reads the first value of a named property as an unsigned
// integer, zero when absent or non-numeric.
func propertyUint(fp *C.TagLib_File, name string) uint {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	values := C.taglib_property_get(fp, cname)
	if values == nil {
		return 0
	}
	defer C.taglib_property_free(values)

	first := *values
	if first == nil {
		return 0
	}
	n, err := strconv.ParseUint(C.GoString(first), 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}

func setPropertyUint(fp *C.TagLib_File, name string, value uint) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	if value == 0 {
		C.taglib_property_set(fp, cname, nil)
		return
	}

	cvalue := C.CString(strconv.FormatUint(uint64(value), 10))
	defer C.free(unsafe.Pointer(cvalue))
	C.taglib_property_set(fp, cname, cvalue)
}

func fileType(typ engine.FileType) C.TagLib_File_Type {
	switch typ {
	case engine.TypeMPEG:
		return C.TagLib_File_MPEG
	case engine.TypeOggVorbis:
		return C.TagLib_File_OggVorbis
	case engine.TypeFLAC:
		return C.TagLib_File_FLAC
	case engine.TypeMPC:
		return C.TagLib_File_MPC
	case engine.TypeOggFLAC:
		return C.TagLib_File_OggFlac
	case engine.TypeWavPack:
		return C.TagLib_File_WavPack
	case engine.TypeSpeex:
		return C.TagLib_File_Speex
	case engine.TypeTrueAudio:
		return C.TagLib_File_TrueAudio
	case engine.TypeMP4:
		return C.TagLib_File_MP4
	case engine.TypeASF:
		return C.TagLib_File_ASF
	}
	return C.TagLib_File_MPEG
}
