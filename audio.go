package taglib

import (
	"time"

	"github.com/simonhull/taglib/internal/engine"
)

// AudioProperties is a view over the technical properties of an open
// File: duration, bitrate, sample rate, and channel count.
//
// Like Tag, it borrows engine state owned by the File and is valid only
// while the File is open. Properties the engine could not determine
// read as zero. These calls cannot fail.
type AudioProperties struct {
	eng engine.Engine
	ref engine.PropsRef
}

// Length returns the audio duration, at one-second resolution.
func (p *AudioProperties) Length() time.Duration {
	return time.Duration(p.eng.ReadProp(p.ref, engine.PropLength)) * time.Second
}

// Bitrate returns the bitrate in kb/s.
func (p *AudioProperties) Bitrate() int {
	return p.eng.ReadProp(p.ref, engine.PropBitrate)
}

// SampleRate returns the sample rate in Hz.
func (p *AudioProperties) SampleRate() int {
	return p.eng.ReadProp(p.ref, engine.PropSampleRate)
}

// Channels returns the number of audio channels.
func (p *AudioProperties) Channels() int {
	return p.eng.ReadProp(p.ref, engine.PropChannels)
}
