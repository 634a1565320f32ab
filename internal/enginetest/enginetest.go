// Package enginetest provides an instrumented in-memory engine for
// testing the public API without linking the native library.
//
// The fake tracks every resource hand-off: how many file handles are
// live, how many buffers were handed out and how many were released,
// and how many write calls were made. Tests use the counters to verify
// the exactly-once release discipline the real engine demands.
package enginetest

import (
	"sync"

	"github.com/simonhull/taglib/internal/engine"
)

// FileData is the tag content of one fake file.
type FileData struct {
	// Valid mirrors the engine's container validity check. An invalid
	// file still opens (the bytes were readable) but holds no usable
	// tag structure.
	Valid bool

	// SaveFails makes every Save call on this file report failure.
	SaveFails bool

	Strings map[engine.StringField][]byte
	Uints   map[engine.UintField]uint
	Props   map[engine.Prop]int
}

// Engine is an in-memory engine.Engine with resource accounting.
// Safe for concurrent use across distinct file refs, like the real one.
type Engine struct {
	mu    sync.Mutex
	files map[string]*FileData

	nextRef  uintptr
	open     map[engine.FileRef]*FileData
	buffers  map[engine.Buffer][]byte
	liveBufs int

	// Counters, readable through accessors after the fact.
	opens       int
	frees       int
	reads       int
	bufFrees    int
	writes      int
	doubleFrees int
}

// New returns an empty fake engine. Add files with AddFile.
func New() *Engine {
	return &Engine{
		files:   make(map[string]*FileData),
		nextRef: 1,
		open:    make(map[engine.FileRef]*FileData),
		buffers: make(map[engine.Buffer][]byte),
	}
}

// AddFile registers a fake file at path and returns its data for
// further mutation by the test.
func (e *Engine) AddFile(path string, valid bool) *FileData {
	e.mu.Lock()
	defer e.mu.Unlock()

	fd := &FileData{
		Valid:   valid,
		Strings: make(map[engine.StringField][]byte),
		Uints:   make(map[engine.UintField]uint),
		Props:   make(map[engine.Prop]int),
	}
	e.files[path] = fd
	return fd
}

func (e *Engine) Open(path string) (engine.FileRef, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	fd, ok := e.files[path]
	if !ok {
		return 0, false
	}
	ref := engine.FileRef(e.nextRef)
	e.nextRef++
	e.open[ref] = fd
	e.opens++
	return ref, true
}

func (e *Engine) OpenType(path string, _ engine.FileType) (engine.FileRef, bool) {
	return e.Open(path)
}

func (e *Engine) Valid(f engine.FileRef) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	fd := e.open[f]
	return fd != nil && fd.Valid
}

func (e *Engine) Tag(f engine.FileRef) engine.TagRef {
	return engine.TagRef(f)
}

func (e *Engine) Properties(f engine.FileRef) engine.PropsRef {
	return engine.PropsRef(f)
}

func (e *Engine) Save(f engine.FileRef) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	fd := e.open[f]
	return fd != nil && !fd.SaveFails
}

func (e *Engine) FreeFile(f engine.FileRef) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.open[f]; !ok {
		e.doubleFrees++
		return
	}
	delete(e.open, f)
	e.frees++
}

func (e *Engine) ReadString(t engine.TagRef, field engine.StringField) engine.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()

	fd := e.open[engine.FileRef(t)]
	if fd == nil {
		return 0
	}
	buf := engine.Buffer(e.nextRef)
	e.nextRef++
	// Copy so later writes to the file don't alias the buffer.
	b := make([]byte, len(fd.Strings[field]))
	copy(b, fd.Strings[field])
	e.buffers[buf] = b
	e.reads++
	e.liveBufs++
	return buf
}

func (e *Engine) BufferBytes(b engine.Buffer) []byte {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buffers[b]
}

func (e *Engine) FreeBuffer(b engine.Buffer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.buffers[b]; !ok {
		e.doubleFrees++
		return
	}
	delete(e.buffers, b)
	e.bufFrees++
	e.liveBufs--
}

func (e *Engine) WriteString(t engine.TagRef, field engine.StringField, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if fd := e.open[engine.FileRef(t)]; fd != nil {
		fd.Strings[field] = []byte(value)
	}
	e.writes++
}

func (e *Engine) ReadUint(t engine.TagRef, field engine.UintField) uint {
	e.mu.Lock()
	defer e.mu.Unlock()
	if fd := e.open[engine.FileRef(t)]; fd != nil {
		return fd.Uints[field]
	}
	return 0
}

func (e *Engine) WriteUint(t engine.TagRef, field engine.UintField, value uint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if fd := e.open[engine.FileRef(t)]; fd != nil {
		fd.Uints[field] = value
	}
	e.writes++
}

func (e *Engine) ReadProp(p engine.PropsRef, prop engine.Prop) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if fd := e.open[engine.FileRef(p)]; fd != nil {
		return fd.Props[prop]
	}
	return 0
}

// LiveFiles returns the number of file handles opened but not yet freed.
func (e *Engine) LiveFiles() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.open)
}

// LiveBuffers returns the number of string buffers handed out but not
// yet freed.
func (e *Engine) LiveBuffers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.liveBufs
}

// Reads returns the number of ReadString calls made.
func (e *Engine) Reads() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reads
}

// BufferFrees returns the number of FreeBuffer calls on live buffers.
func (e *Engine) BufferFrees() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.bufFrees
}

// Writes returns the number of write calls (string or numeric).
func (e *Engine) Writes() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.writes
}

// DoubleFrees returns the number of frees on already-released
// resources. Always zero for a correct caller.
func (e *Engine) DoubleFrees() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doubleFrees
}

var _ engine.Engine = (*Engine)(nil)
