package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

// minGain is the fader floor; gains at or below it mute the track outright
// rather than chasing -inf decibels
const minGain = 0.001

// Track is one loaded WAV file with its playback chain:
// stream -> resample -> ctrl (pause) -> pan -> volume
type Track struct {
	Name string
	Path string

	format beep.Format
	stream beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	pan    *effects.Pan
	vol    *effects.Volume

	gain  float64
	muted bool
}

// Load decodes a WAV file and builds its playback chain at the engine rate
// The track starts paused at unity gain, centered
func Load(path string, rate beep.SampleRate) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load track: %w", err)
	}

	stream, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("load track %s: %w", path, err)
	}

	var src beep.Streamer = stream
	if format.SampleRate != rate {
		src = beep.Resample(4, format.SampleRate, rate, stream)
	}

	ctrl := &beep.Ctrl{Streamer: src, Paused: true}
	pan := &effects.Pan{Streamer: ctrl, Pan: 0}
	vol := &effects.Volume{Streamer: pan, Base: 2, Volume: 0}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Track{
		Name:   name,
		Path:   path,
		format: format,
		stream: stream,
		ctrl:   ctrl,
		pan:    pan,
		vol:    vol,
		gain:   1,
	}, nil
}

// Streamer returns the head of the playback chain for mixing
func (t *Track) Streamer() beep.Streamer { return t.vol }

// Gain returns the current linear fader gain
func (t *Track) Gain() float64 { return t.gain }

// SetGain sets the linear fader gain; the volume effect is exponential so
// the linear value maps through log2
func (t *Track) SetGain(gain float64) {
	if gain < 0 {
		gain = 0
	}
	t.gain = gain

	speaker.Lock()
	if gain <= minGain {
		t.vol.Silent = true
	} else {
		t.vol.Silent = t.muted
		t.vol.Volume = math.Log2(gain)
	}
	speaker.Unlock()
}

// SetPan positions the track in the stereo field, -1 left to 1 right
func (t *Track) SetPan(p float64) {
	if p < -1 {
		p = -1
	}
	if p > 1 {
		p = 1
	}
	speaker.Lock()
	t.pan.Pan = p
	speaker.Unlock()
}

// Pan returns the current stereo position
func (t *Track) Pan() float64 { return t.pan.Pan }

// SetMuted silences the track without touching the fader
func (t *Track) SetMuted(muted bool) {
	t.muted = muted
	speaker.Lock()
	t.vol.Silent = muted || t.gain <= minGain
	speaker.Unlock()
}

// Muted reports the mute flag
func (t *Track) Muted() bool { return t.muted }

// SetPaused stops or resumes streaming
func (t *Track) SetPaused(paused bool) {
	speaker.Lock()
	t.ctrl.Paused = paused
	speaker.Unlock()
}

// Paused reports whether the track is streaming
func (t *Track) Paused() bool { return t.ctrl.Paused }

// Rewind seeks the underlying stream back to the start
func (t *Track) Rewind() error {
	speaker.Lock()
	err := t.stream.Seek(0)
	speaker.Unlock()
	if err != nil {
		return fmt.Errorf("rewind %s: %w", t.Name, err)
	}
	return nil
}

// Progress returns playback position as a fraction of track length
func (t *Track) Progress() float64 {
	speaker.Lock()
	pos, length := t.stream.Position(), t.stream.Len()
	speaker.Unlock()
	if length <= 0 {
		return 0
	}
	return float64(pos) / float64(length)
}

// Close releases the underlying file
func (t *Track) Close() error {
	return t.stream.Close()
}
