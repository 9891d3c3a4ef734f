package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestDestroyWithoutRender verifies no delete command is emitted for a
// session that never rendered
func TestDestroyWithoutRender(t *testing.T) {
	var sink bytes.Buffer
	s := NewSession(&sink, 7, 16, 16, Window{Cols: 4, Rows: 2})

	if err := s.Destroy(); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	if sink.Len() != 0 {
		t.Errorf("Expected no output, got %q", sink.String())
	}
}

// TestDestroyAfterRender verifies exactly one delete command follows the
// transmitted chunks
func TestDestroyAfterRender(t *testing.T) {
	var sink bytes.Buffer
	s := NewSession(&sink, 7, 16, 16, Window{Cols: 4, Rows: 2})
	s.Buffer().Clear(RGBA{R: 1, G: 2, B: 3, A: 255})

	if err := s.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !s.Placed() {
		t.Error("Expected session marked placed after render")
	}

	if err := s.Destroy(); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}

	del := "\x1b_Ga=d,d=I,i=7,q=2\x1b\\"
	if got := strings.Count(sink.String(), del); got != 1 {
		t.Errorf("Expected exactly 1 delete command, got %d", got)
	}
	if !strings.HasSuffix(sink.String(), del) {
		t.Error("Expected delete command last in the stream")
	}
}

// TestRenderWritesChunksInOrder verifies the sink receives the encoder's
// chunks in sequence with the id in the first command only
func TestRenderWritesChunksInOrder(t *testing.T) {
	var sink bytes.Buffer
	// 64x64 RGBA is 16KB raw, forcing multiple chunks
	s := NewSession(&sink, 3, 64, 64, Window{Cols: 8, Rows: 4})

	if err := s.Render(); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := sink.String()
	if !strings.HasPrefix(out, "\x1b_Ga=T,U=1,i=3,") {
		t.Errorf("Expected transmit header first, got %q", out[:24])
	}
	if strings.Count(out, "i=3") != 1 {
		t.Errorf("Expected image id only on the first chunk, got %d occurrences", strings.Count(out, "i=3"))
	}
	if !strings.Contains(out, "m=0;") {
		t.Error("Expected final chunk with m=0")
	}
}

// failWriter fails after n successful writes
type failWriter struct {
	n   int
	err error
}

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	w.n--
	return len(p), nil
}

// TestRenderWriteFailurePropagates verifies sink errors surface unretried
func TestRenderWriteFailurePropagates(t *testing.T) {
	sinkErr := errors.New("sink closed")
	w := &failWriter{n: 1, err: sinkErr}
	s := NewSession(w, 1, 64, 64, Window{Cols: 8, Rows: 4})

	err := s.Render()
	if !errors.Is(err, sinkErr) {
		t.Fatalf("Expected sink error, got %v", err)
	}
	if s.Placed() {
		t.Error("Expected failed render to leave session unplaced")
	}
}

// TestRenderAfterPartialFailure verifies a later render can still place the
// session; state recovery is the caller's re-render
func TestRenderAfterPartialFailure(t *testing.T) {
	sinkErr := fmt.Errorf("flaky")
	w := &failWriter{n: 0, err: sinkErr}
	s := NewSession(w, 1, 4, 4, Window{Cols: 1, Rows: 1})

	if err := s.Render(); err == nil {
		t.Fatal("Expected first render to fail")
	}

	w.n = 1 << 20
	if err := s.Render(); err != nil {
		t.Fatalf("Expected re-render to succeed, got %v", err)
	}
	if !s.Placed() {
		t.Error("Expected session placed after successful re-render")
	}
}
