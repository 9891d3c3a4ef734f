// Package audio provides WAV track playback and waveform peak extraction
// on top of the beep streaming stack.
//
// The Engine owns the speaker and a master mixer; Tracks wrap one decoded
// WAV file each with a pause control, pan, and volume chain. Peak
// extraction folds a file's samples into fixed-size min/max buckets for
// waveform display; no other signal processing happens here.
package audio
