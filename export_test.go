package taglib

import "github.com/simonhull/taglib/internal/engine"

// OpenWith opens a file against an explicit engine, bypassing the
// default-engine registry. Test-only seam.
func OpenWith(e engine.Engine, path string, opts ...Option) (*File, error) {
	return openWith(e, path, opts...)
}
