package taglib_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/simonhull/taglib"
	"github.com/simonhull/taglib/internal/engine"
	"github.com/simonhull/taglib/internal/enginetest"
)

func openFixture(t *testing.T, eng *enginetest.Engine, path string) *taglib.File {
	t.Helper()
	file, err := taglib.OpenWith(eng, path)
	if err != nil {
		t.Fatalf("Open %s: %v", path, err)
	}
	t.Cleanup(func() { file.Close() })
	return file
}

// The round-trip law: a value written through a setter reads back
// unchanged after passing through the engine.
func TestStringFields_RoundTrip(t *testing.T) {
	eng := enginetest.New()
	eng.AddFile("song.mp3", true)
	tag := openFixture(t, eng, "song.mp3").Tag()

	fields := []struct {
		name  string
		set   func(string) error
		read  func() (string, error)
		value string
	}{
		{"title", tag.SetTitle, tag.Title, "Out on the Weekend"},
		{"artist", tag.SetArtist, tag.Artist, "Neil Young"},
		{"album", tag.SetAlbum, tag.Album, "Harvest"},
		{"comment", tag.SetComment, tag.Comment, "1972 pressing"},
		{"genre", tag.SetGenre, tag.Genre, "Folk Rock"},
	}

	for _, f := range fields {
		if err := f.set(f.value); err != nil {
			t.Fatalf("set %s: %v", f.name, err)
		}
		got, err := f.read()
		if err != nil {
			t.Fatalf("read %s: %v", f.name, err)
		}
		if got != f.value {
			t.Errorf("%s round trip = %q, want %q", f.name, got, f.value)
		}
	}
}

func TestStringFields_EmptyIsNotAnError(t *testing.T) {
	eng := enginetest.New()
	eng.AddFile("untagged.mp3", true)
	tag := openFixture(t, eng, "untagged.mp3").Tag()

	title, err := tag.Title()
	if err != nil {
		t.Fatalf("Title on untagged file: %v", err)
	}
	if title != "" {
		t.Errorf("Title = %q, want empty", title)
	}
}

func TestStringFields_DecodeError(t *testing.T) {
	eng := enginetest.New()
	fd := eng.AddFile("mojibake.mp3", true)
	fd.Strings[engine.FieldTitle] = []byte{0xc3, 0x28}          // invalid UTF-8
	fd.Strings[engine.FieldArtist] = []byte("Kraftwerk")        // fine
	fd.Strings[engine.FieldGenre] = []byte("Elektronische\xff") // invalid UTF-8

	tag := openFixture(t, eng, "mojibake.mp3").Tag()

	_, err := tag.Title()
	var decodeErr *taglib.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if decodeErr.Field != "title" {
		t.Errorf("Field = %q, want %q", decodeErr.Field, "title")
	}
	if !bytes.Equal(decodeErr.Raw, []byte{0xc3, 0x28}) {
		t.Errorf("Raw = %x, want c328", decodeErr.Raw)
	}

	// Decode failure is confined to the field: others stay readable.
	artist, err := tag.Artist()
	if err != nil {
		t.Fatalf("Artist after title decode failure: %v", err)
	}
	if artist != "Kraftwerk" {
		t.Errorf("Artist = %q, want %q", artist, "Kraftwerk")
	}

	if _, err := tag.Genre(); err == nil {
		t.Error("expected decode error for genre")
	}
}

// Every read releases its transient buffer exactly once, including
// reads whose bytes failed to decode.
func TestStringFields_BufferReleasedExactlyOnce(t *testing.T) {
	eng := enginetest.New()
	fd := eng.AddFile("song.mp3", true)
	fd.Strings[engine.FieldTitle] = []byte("ok")
	fd.Strings[engine.FieldArtist] = []byte{0xff} // decode will fail

	tag := openFixture(t, eng, "song.mp3").Tag()

	for i := 0; i < 3; i++ {
		if _, err := tag.Title(); err != nil {
			t.Fatalf("Title: %v", err)
		}
		if _, err := tag.Artist(); err == nil {
			t.Fatal("expected decode error for artist")
		}
		if _, err := tag.Comment(); err != nil {
			t.Fatalf("Comment: %v", err)
		}
	}

	if eng.BufferFrees() != eng.Reads() {
		t.Errorf("buffer frees = %d, reads = %d; must match", eng.BufferFrees(), eng.Reads())
	}
	if n := eng.LiveBuffers(); n != 0 {
		t.Errorf("%d buffers still live", n)
	}
	if n := eng.DoubleFrees(); n != 0 {
		t.Errorf("%d buffers freed twice", n)
	}
}

func TestSetters_RejectNulByte(t *testing.T) {
	eng := enginetest.New()
	fd := eng.AddFile("song.mp3", true)
	fd.Strings[engine.FieldTitle] = []byte("before")

	tag := openFixture(t, eng, "song.mp3").Tag()
	writesBefore := eng.Writes()

	err := tag.SetTitle("bad\x00title")
	var nulErr *taglib.NulByteError
	if !errors.As(err, &nulErr) {
		t.Fatalf("expected *NulByteError, got %T", err)
	}
	if nulErr.What != "title" || nulErr.Position != 3 {
		t.Errorf("got What=%q Position=%d, want title/3", nulErr.What, nulErr.Position)
	}

	// The engine must not have been called: no write happened and the
	// stored value is untouched.
	if eng.Writes() != writesBefore {
		t.Errorf("engine saw %d writes for a rejected value", eng.Writes()-writesBefore)
	}
	title, err := tag.Title()
	if err != nil {
		t.Fatalf("Title: %v", err)
	}
	if title != "before" {
		t.Errorf("Title = %q after rejected set, want %q", title, "before")
	}
}

func TestNumericFields_ZeroMeansAbsent(t *testing.T) {
	eng := enginetest.New()
	fd := eng.AddFile("song.mp3", true)
	fd.Uints[engine.FieldYear] = 1972
	// track and bpm left unset (engine reports zero)

	tag := openFixture(t, eng, "song.mp3").Tag()

	year, ok := tag.Year()
	if !ok || year != 1972 {
		t.Errorf("Year = (%d, %v), want (1972, true)", year, ok)
	}
	if track, ok := tag.Track(); ok {
		t.Errorf("Track = (%d, true), want absent", track)
	}
	if bpm, ok := tag.BPM(); ok {
		t.Errorf("BPM = (%d, true), want absent", bpm)
	}
}

func TestNumericFields_RoundTrip(t *testing.T) {
	eng := enginetest.New()
	eng.AddFile("song.mp3", true)
	tag := openFixture(t, eng, "song.mp3").Tag()

	tag.SetYear(1972)
	tag.SetTrack(4)

	if year, ok := tag.Year(); !ok || year != 1972 {
		t.Errorf("Year = (%d, %v), want (1972, true)", year, ok)
	}
	if track, ok := tag.Track(); !ok || track != 4 {
		t.Errorf("Track = (%d, %v), want (4, true)", track, ok)
	}

	// Setting zero clears the field; it reads back as absent. The
	// engine cannot distinguish "clear" from "set to zero".
	tag.SetYear(0)
	if year, ok := tag.Year(); ok {
		t.Errorf("Year = (%d, true) after clearing, want absent", year)
	}
}
