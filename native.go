//go:build cgo

package taglib

// Link the TagLib-backed engine into cgo builds. The package registers
// itself as the default engine in its init function.
import _ "github.com/simonhull/taglib/internal/native"
