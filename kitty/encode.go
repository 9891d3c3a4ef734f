package kitty

import (
	"encoding/base64"
	"fmt"
)

const (
	// ChunkSize is the maximum base64 payload length per command
	ChunkSize = 4096

	cmdOpen  = "\x1b_G"
	cmdClose = "\x1b\\"
)

// EncodeTransmit encodes an RGBA buffer as a sequence of transmit commands
// for virtual placement.
//
// The buffer is base64-encoded as a whole and split into chunks of at most
// ChunkSize characters. The first command carries the full parameter set:
// transmit action, virtual placement flag, image id, target cell size,
// 32-bit RGBA pixel format and source pixel dimensions. Continuation
// commands carry only the more-data flag; the emulator associates them with
// the most recently started transmission. The flag is m=1 on every chunk
// except the last, which carries m=0.
func EncodeTransmit(id int, rgba []byte, width, height, cols, rows int) []string {
	payload := base64.StdEncoding.EncodeToString(rgba)

	n := (len(payload) + ChunkSize - 1) / ChunkSize
	if n == 0 {
		n = 1
	}

	cmds := make([]string, 0, n)
	for i := 0; i < n; i++ {
		start := i * ChunkSize
		end := start + ChunkSize
		if end > len(payload) {
			end = len(payload)
		}
		chunk := payload[start:end]

		more := 1
		if i == n-1 {
			more = 0
		}

		if i == 0 {
			cmds = append(cmds, fmt.Sprintf("%sa=T,U=1,i=%d,c=%d,r=%d,f=32,s=%d,v=%d,m=%d;%s%s",
				cmdOpen, id, cols, rows, width, height, more, chunk, cmdClose))
		} else {
			cmds = append(cmds, fmt.Sprintf("%sm=%d;%s%s", cmdOpen, more, chunk, cmdClose))
		}
	}
	return cmds
}

// EncodeDelete encodes the command deleting a transmitted image by id.
// Terminal responses are suppressed so the delete cannot leak reply text
// into the input stream.
func EncodeDelete(id int) string {
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2%s", cmdOpen, id, cmdClose)
}
