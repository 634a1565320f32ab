package taglib

import "github.com/simonhull/taglib/internal/engine"

// Format identifies an audio container format, as a hint to the engine.
//
// By default the engine detects the format from file content. Pass
// WithFormat to Open to force a specific parser, for files whose
// extension or content defeats detection.
type Format int

const (
	// FormatAuto lets the engine detect the format from file content.
	FormatAuto Format = iota
	FormatMPEG
	FormatOggVorbis
	FormatFLAC
	FormatMPC
	FormatOggFLAC
	FormatWavPack
	FormatSpeex
	FormatTrueAudio
	FormatMP4
	FormatASF
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatMPEG:
		return "MPEG"
	case FormatOggVorbis:
		return "Ogg Vorbis"
	case FormatFLAC:
		return "FLAC"
	case FormatMPC:
		return "MPC"
	case FormatOggFLAC:
		return "Ogg FLAC"
	case FormatWavPack:
		return "WavPack"
	case FormatSpeex:
		return "Speex"
	case FormatTrueAudio:
		return "TrueAudio"
	case FormatMP4:
		return "MP4"
	case FormatASF:
		return "ASF"
	default:
		return "unknown"
	}
}

func (f Format) fileType() engine.FileType {
	switch f {
	case FormatMPEG:
		return engine.TypeMPEG
	case FormatOggVorbis:
		return engine.TypeOggVorbis
	case FormatFLAC:
		return engine.TypeFLAC
	case FormatMPC:
		return engine.TypeMPC
	case FormatOggFLAC:
		return engine.TypeOggFLAC
	case FormatWavPack:
		return engine.TypeWavPack
	case FormatSpeex:
		return engine.TypeSpeex
	case FormatTrueAudio:
		return engine.TypeTrueAudio
	case FormatMP4:
		return engine.TypeMP4
	case FormatASF:
		return engine.TypeASF
	}
	return engine.TypeAuto
}
