package audio

import (
	"fmt"
	"os"

	"github.com/gopxl/beep/v2/wav"
)

// Peak is the amplitude extent of one waveform bucket, both in [-1,1]
type Peak struct {
	Min float64
	Max float64
}

// Peaks streams a WAV file once and folds its samples into buckets of
// min/max pairs, one per display column. Stereo is folded to mono by
// averaging the channels. The file is read independently of any playback
// chain so extraction never disturbs a playing track.
func Peaks(path string, buckets int) ([]Peak, error) {
	if buckets <= 0 {
		return nil, fmt.Errorf("peaks: bucket count %d", buckets)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("peaks: %w", err)
	}
	defer f.Close()

	stream, _, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("peaks %s: %w", path, err)
	}
	defer stream.Close()

	total := stream.Len()
	if total <= 0 {
		return make([]Peak, buckets), nil
	}

	perBucket := (total + buckets - 1) / buckets
	peaks := make([]Peak, buckets)
	for i := range peaks {
		peaks[i] = Peak{Min: 1, Max: -1}
	}

	var chunk [512][2]float64
	seen := 0
	for {
		n, ok := stream.Stream(chunk[:])
		for i := 0; i < n; i++ {
			mono := (chunk[i][0] + chunk[i][1]) / 2
			b := (seen + i) / perBucket
			if b >= buckets {
				b = buckets - 1
			}
			if mono < peaks[b].Min {
				peaks[b].Min = mono
			}
			if mono > peaks[b].Max {
				peaks[b].Max = mono
			}
		}
		seen += n
		if !ok {
			break
		}
	}

	// Buckets past the end of a short file stay flat
	for i := range peaks {
		if peaks[i].Min > peaks[i].Max {
			peaks[i] = Peak{}
		}
	}
	return peaks, nil
}
