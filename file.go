package taglib

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/taglib/internal/engine"
)

// File represents an opened audio file whose tag is held by the engine.
//
// File owns exactly one engine resource. The resource is released by
// Close, exactly once; no other operation releases it. The Tag and
// AudioProperties views obtained from a File borrow engine state owned
// by the File and must not be used after Close - Go cannot enforce this
// at compile time, so it is a hard precondition, not a runtime check.
//
// A File and its views are not safe for concurrent use. Distinct Files
// over distinct paths are independent and may be used from different
// goroutines.
//
// Always close the file when done:
//
//	file, err := taglib.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
type File struct {
	// Path the file was opened with.
	Path string

	eng    engine.Engine
	ref    engine.FileRef
	tag    Tag
	props  AudioProperties
	closed bool
}

// Open opens an audio file and binds its tag.
//
// The path must be valid UTF-8 with no embedded NUL byte; Open returns
// *InvalidPathError or *NulByteError otherwise, without touching the
// engine. If the engine cannot produce a file resource (missing file,
// unreadable, unrecognized bytes), Open returns *OpenError. If the file
// opened but holds no usable tag structure, Open returns
// *InvalidTagFileError after releasing the half-open resource.
//
// On success the returned File is fully constructed: its tag and audio
// property views are already bound. There is no partially-open state.
//
// Options can be provided to customize opening:
//
//	file, err := taglib.Open("song.ogg", taglib.WithFormat(taglib.FormatOggVorbis))
//
// Example:
//
//	file, err := taglib.Open("song.mp3")
//	if err != nil {
//		return err
//	}
//	defer file.Close()
//	title, err := file.Tag().Title()
func Open(path string, opts ...Option) (*File, error) {
	e := engine.Default()
	if e == nil {
		return nil, &OpenError{Path: path, Reason: "no engine linked into this build (requires cgo and libtag_c)"}
	}
	return openWith(e, path, opts...)
}

// openWith is Open against an explicit engine (internal, for testing).
func openWith(e engine.Engine, path string, opts ...Option) (*File, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if !utf8.ValidString(path) {
		return nil, &InvalidPathError{Path: path}
	}
	if i := strings.IndexByte(path, 0); i >= 0 {
		return nil, &NulByteError{What: "path", Position: i}
	}

	var (
		ref engine.FileRef
		ok  bool
	)
	if options.format == FormatAuto {
		ref, ok = e.Open(path)
	} else {
		ref, ok = e.OpenType(path, options.format.fileType())
	}
	if !ok {
		return nil, &OpenError{Path: path}
	}

	// The resource exists from here on. On the invalid-format path it
	// must still be released before the error returns.
	if !e.Valid(ref) {
		e.FreeFile(ref)
		return nil, &InvalidTagFileError{Path: path}
	}

	f := &File{
		Path: path,
		eng:  e,
		ref:  ref,
	}
	f.tag = Tag{eng: e, ref: e.Tag(ref)}
	f.props = AudioProperties{eng: e, ref: e.Properties(ref)}
	return f, nil
}

// Tag returns the file's tag view.
//
// The view borrows engine state owned by the File: it is valid only
// until Close and must not be retained past it.
func (f *File) Tag() *Tag {
	return &f.tag
}

// AudioProperties returns the file's technical audio properties.
// Same lifetime contract as Tag.
func (f *File) AudioProperties() *AudioProperties {
	return &f.props
}

// Save persists in-memory tag changes to the backing file on disk.
//
// Returns *SaveError if the engine reports failure. The file stays open
// and valid either way; a failed save may be retried.
func (f *File) Save() error {
	if !f.eng.Save(f.ref) {
		return &SaveError{Path: f.Path}
	}
	return nil
}

// Close releases the engine resource backing this file.
//
// Close is idempotent: the resource is released on the first call and
// later calls are no-ops. After Close, the File and any Tag or
// AudioProperties views obtained from it must not be used.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.eng.FreeFile(f.ref)
	return nil
}

// OpenMany opens multiple audio files concurrently.
//
// Files are opened in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails to open, all successfully opened files are closed
// and an error is returned.
//
// Example:
//
//	files, err := taglib.OpenMany(ctx, paths...)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() {
//		for _, f := range files {
//			f.Close()
//		}
//	}()
func OpenMany(ctx context.Context, paths ...string) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*File, len(paths))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := Open(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, file := range results {
			if file != nil {
				file.Close()
			}
		}
		return nil, err
	}

	return results, nil
}
