// Package taglib provides safe, lifetime-correct access to audio file
// metadata through the native TagLib library.
//
// taglib wraps TagLib's C bindings behind an ownership-aware Go API.
// The native layer deals in raw handles and manually managed string
// buffers with no compile-time safety; this package converts that into
// a File that owns its resource, views that borrow from it, and typed
// recoverable errors.
//
// # Quick Start
//
// Reading metadata from an audio file:
//
//	file, err := taglib.Open("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	title, _ := file.Tag().Title()
//	artist, _ := file.Tag().Artist()
//	fmt.Printf("%s - %s\n", artist, title)
//
// Editing metadata:
//
//	tag := file.Tag()
//	if err := tag.SetAlbum("Remastered"); err != nil {
//		return err
//	}
//	tag.SetYear(2024)
//	if err := file.Save(); err != nil {
//		return err
//	}
//
// # Ownership and Lifetimes
//
// Three rules govern every resource that crosses the native boundary:
//
//  1. A File owns exactly one native file resource, released by Close,
//     exactly once. Close is idempotent.
//  2. Tag and AudioProperties are borrowed views. They are bound to
//     their File when it is opened and become invalid the instant it is
//     closed. Go has no borrow checker, so not using a view after Close
//     is a documented hard precondition of this API.
//  3. Every string buffer the native layer hands back is copied into Go
//     memory and released exactly once per read, whether or not its
//     bytes decoded cleanly.
//
// # Error Handling
//
// Every failure is a typed, recoverable error: *OpenError,
// *InvalidTagFileError, *SaveError, *InvalidPathError, *NulByteError,
// and per-field *DecodeError. Nothing is logged or retried internally.
// A field whose bytes are not valid UTF-8 fails alone; other fields
// stay readable. An absent field is an empty string or an unset
// numeric, never an error:
//
//	year, ok := file.Tag().Year()
//	if !ok {
//		// year is not set on this file
//	}
//
// # Concurrency
//
// A File and its views are confined to one goroutine at a time.
// Distinct Files are independent; OpenMany opens a batch of files in
// parallel:
//
//	files, err := taglib.OpenMany(ctx, paths...)
//
// # Requirements
//
// The native engine links against TagLib's C bindings (libtag_c) via
// cgo. Built without cgo, Open fails with *OpenError.
package taglib
