package taglib

import (
	"testing"

	"github.com/simonhull/taglib/internal/engine"
)

func TestFormat_String(t *testing.T) {
	if got := FormatOggVorbis.String(); got != "Ogg Vorbis" {
		t.Errorf("FormatOggVorbis.String() = %q", got)
	}
	if got := FormatAuto.String(); got != "auto" {
		t.Errorf("FormatAuto.String() = %q", got)
	}
	if got := Format(99).String(); got != "unknown" {
		t.Errorf("Format(99).String() = %q", got)
	}
}

func TestFormat_FileType(t *testing.T) {
	if got := FormatFLAC.fileType(); got != engine.TypeFLAC {
		t.Errorf("FormatFLAC.fileType() = %v, want TypeFLAC", got)
	}
	if got := FormatAuto.fileType(); got != engine.TypeAuto {
		t.Errorf("FormatAuto.fileType() = %v, want TypeAuto", got)
	}
}
