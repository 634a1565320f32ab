package taglib

import (
	"strings"
	"testing"
)

func TestOpenError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *OpenError
		contains []string
	}{
		{
			name:     "without reason",
			err:      &OpenError{Path: "missing.mp3"},
			contains: []string{"missing.mp3", "open failed"},
		},
		{
			name:     "with reason",
			err:      &OpenError{Path: "song.mp3", Reason: "no engine linked into this build (requires cgo and libtag_c)"},
			contains: []string{"song.mp3", "open failed", "no engine linked"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestInvalidTagFileError_Error(t *testing.T) {
	err := &InvalidTagFileError{Path: "noise.bin"}

	msg := err.Error()
	if !strings.Contains(msg, "noise.bin") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "no usable tag structure") {
		t.Errorf("error should name the failure, got: %s", msg)
	}
}

func TestSaveError_Error(t *testing.T) {
	err := &SaveError{Path: "readonly.flac"}

	msg := err.Error()
	if !strings.Contains(msg, "readonly.flac") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "save failed") {
		t.Errorf("error should contain 'save failed', got: %s", msg)
	}
}

func TestNulByteError_Error(t *testing.T) {
	err := &NulByteError{What: "title", Position: 3}

	msg := err.Error()
	if !strings.Contains(msg, "title") {
		t.Errorf("error should name the value, got: %s", msg)
	}
	if !strings.Contains(msg, "position 3") {
		t.Errorf("error should contain the position, got: %s", msg)
	}
}

func TestInvalidPathError_Error(t *testing.T) {
	err := &InvalidPathError{Path: "song\xff.mp3"}

	msg := err.Error()
	if !strings.Contains(msg, "not valid UTF-8") {
		t.Errorf("error should name the encoding fault, got: %s", msg)
	}
}

func TestDecodeError_Error(t *testing.T) {
	err := &DecodeError{Field: "genre", Raw: []byte{0xff, 0xfe}}

	msg := err.Error()
	if !strings.Contains(msg, "genre") {
		t.Errorf("error should contain the field, got: %s", msg)
	}
	if !strings.Contains(msg, "not valid UTF-8") {
		t.Errorf("error should name the encoding fault, got: %s", msg)
	}
	if !strings.Contains(msg, "2 bytes") {
		t.Errorf("error should report the byte count, got: %s", msg)
	}
}
