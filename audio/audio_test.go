package audio

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/v2"
)

// writeWAV emits a minimal PCM16 mono WAV file for decoder-backed tests
func writeWAV(t *testing.T, path string, rate int, samples []int16) {
	t.Helper()

	var data bytes.Buffer
	for _, s := range samples {
		binary.Write(&data, binary.LittleEndian, s)
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+data.Len()))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(rate))
	binary.Write(&buf, binary.LittleEndian, uint32(rate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))      // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))     // bits
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(data.Len()))
	buf.Write(data.Bytes())

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

// TestPeaksBuckets verifies min/max folding into display buckets
func TestPeaksBuckets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.wav")
	samples := make([]int16, 1000)
	for i := range samples {
		if i < 500 {
			samples[i] = 16384 // +0.5
		} else {
			samples[i] = -8192 // -0.25
		}
	}
	writeWAV(t, path, 44100, samples)

	peaks, err := Peaks(path, 2)
	if err != nil {
		t.Fatalf("Peaks failed: %v", err)
	}
	if len(peaks) != 2 {
		t.Fatalf("Expected 2 buckets, got %d", len(peaks))
	}

	if math.Abs(peaks[0].Max-0.5) > 0.01 || math.Abs(peaks[0].Min-0.5) > 0.01 {
		t.Errorf("Expected bucket 0 at +0.5, got %+v", peaks[0])
	}
	if math.Abs(peaks[1].Max+0.25) > 0.01 || math.Abs(peaks[1].Min+0.25) > 0.01 {
		t.Errorf("Expected bucket 1 at -0.25, got %+v", peaks[1])
	}
}

// TestPeaksShortFile verifies buckets past a short file stay flat
func TestPeaksShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.wav")
	writeWAV(t, path, 44100, []int16{8192, 8192})

	peaks, err := Peaks(path, 8)
	if err != nil {
		t.Fatalf("Peaks failed: %v", err)
	}
	for i := 2; i < 8; i++ {
		if peaks[i] != (Peak{}) {
			t.Errorf("Expected flat bucket %d, got %+v", i, peaks[i])
		}
	}
}

// TestPeaksBadBuckets verifies invalid bucket counts error
func TestPeaksBadBuckets(t *testing.T) {
	if _, err := Peaks("whatever.wav", 0); err == nil {
		t.Error("Expected error for 0 buckets")
	}
}

// TestTrackLoad verifies the playback chain setup and fader math
func TestTrackLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kick.wav")
	writeWAV(t, path, 44100, make([]int16, 4410))

	tr, err := Load(path, beep.SampleRate(44100))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer tr.Close()

	if tr.Name != "kick" {
		t.Errorf("Expected name kick, got %q", tr.Name)
	}
	if tr.Gain() != 1 {
		t.Errorf("Expected unity gain, got %f", tr.Gain())
	}
	if !tr.Paused() {
		t.Error("Expected track to start paused")
	}
	if tr.Progress() != 0 {
		t.Errorf("Expected progress 0, got %f", tr.Progress())
	}

	tr.SetGain(0.5)
	if tr.vol.Silent || math.Abs(tr.vol.Volume+1) > 1e-9 {
		t.Errorf("Expected volume -1 (log2 0.5), got %f silent=%v", tr.vol.Volume, tr.vol.Silent)
	}

	tr.SetGain(0)
	if !tr.vol.Silent {
		t.Error("Expected zero gain to silence the track")
	}

	tr.SetGain(1)
	tr.SetMuted(true)
	if !tr.vol.Silent {
		t.Error("Expected mute to silence the track")
	}
	tr.SetMuted(false)
	if tr.vol.Silent {
		t.Error("Expected unmute to restore the track")
	}

	tr.SetPan(-2)
	if tr.Pan() != -1 {
		t.Errorf("Expected pan clamped to -1, got %f", tr.Pan())
	}

	if err := tr.Rewind(); err != nil {
		t.Errorf("Rewind failed: %v", err)
	}
}

// TestTrackLoadMissing verifies a missing file errors cleanly
func TestTrackLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.wav"), 44100); err == nil {
		t.Error("Expected error for missing file")
	}
}

// TestEngineBeforeInit verifies Add is a safe no-op on an uninitialized
// engine; Init itself needs an audio device and is not exercised here
func TestEngineBeforeInit(t *testing.T) {
	e := NewEngine(0)
	if e.Rate() != DefaultSampleRate {
		t.Errorf("Expected default rate %d, got %d", DefaultSampleRate, e.Rate())
	}
	e.Add(nil)
	e.Cleanup()
}
