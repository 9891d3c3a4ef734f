package canvas

import (
	"fmt"
	"io"

	"github.com/wavedeck/wavedeck/kitty"
)

// Window is the terminal-cell area an image is scaled into
// One window maps to exactly one transmit command group
type Window struct {
	Cols int
	Rows int
}

// Session owns one framebuffer and one image identity from construction to
// teardown. The image id must be stable for the session's life and unique
// among concurrently displayed images sharing the same sink.
//
// Sessions are not safe for concurrent use; the owning task is the only
// writer and reader of the framebuffer.
type Session struct {
	fb     *Framebuffer
	id     int
	win    Window
	out    io.Writer
	placed bool
}

// NewSession allocates a session drawing into a width x height framebuffer,
// displayed in the given cell window, writing protocol commands to out
// Nothing is transmitted until the first Render
func NewSession(out io.Writer, id, width, height int, win Window) *Session {
	return &Session{
		fb:  NewFramebuffer(width, height),
		id:  id,
		win: win,
		out: out,
	}
}

// Buffer returns the session's framebuffer for drawing
func (s *Session) Buffer() *Framebuffer { return s.fb }

// ID returns the session's image id
func (s *Session) ID() int { return s.id }

// Window returns the session's placement window
func (s *Session) Window() Window { return s.win }

// Placed reports whether the session has rendered at least once
func (s *Session) Placed() bool { return s.placed }

// Render encodes the current framebuffer contents and writes every chunk,
// in order, to the output sink. Write failures are not retried; a partial
// transmission leaves the terminal-side image state undefined and the
// caller decides whether to re-render or abandon the session.
func (s *Session) Render() error {
	if s.fb == nil {
		return fmt.Errorf("render image %d: session destroyed", s.id)
	}
	cmds := kitty.EncodeTransmit(s.id, s.fb.Pix(), s.fb.Width(), s.fb.Height(), s.win.Cols, s.win.Rows)
	for _, cmd := range cmds {
		if _, err := io.WriteString(s.out, cmd); err != nil {
			return fmt.Errorf("render image %d: %w", s.id, err)
		}
	}
	s.placed = true
	return nil
}

// Destroy tears the session down: if any render succeeded, the delete
// command for the image id is written exactly once, then the framebuffer is
// released. The session must not be used afterwards, and Destroy must not
// be called twice. Skipping Destroy leaves the image resident in the
// terminal; there is no implicit finalization.
func (s *Session) Destroy() error {
	defer func() { s.fb = nil }()
	if !s.placed {
		return nil
	}
	if _, err := io.WriteString(s.out, kitty.EncodeDelete(s.id)); err != nil {
		return fmt.Errorf("delete image %d: %w", s.id, err)
	}
	return nil
}
