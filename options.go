package taglib

// Option configures behavior when opening audio files.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	file, err := taglib.Open("song.audio",
//	    taglib.WithFormat(taglib.FormatOggVorbis),
//	)
type Option func(*openOptions)

// openOptions holds configuration for opening files.
type openOptions struct {
	format Format // Container format hint (FormatAuto = detect)
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		format: FormatAuto,
	}
}

// WithFormat forces the engine to parse the file as the given format
// instead of detecting it from content.
//
// Useful for files whose extension or leading bytes defeat detection.
// Opening still fails with *InvalidTagFileError if the content does not
// actually match.
//
// Example:
//
//	file, err := taglib.Open("stream.bin", taglib.WithFormat(taglib.FormatMPEG))
func WithFormat(format Format) Option {
	return func(o *openOptions) {
		o.format = format
	}
}
