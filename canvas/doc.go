// Package canvas provides an in-memory RGBA framebuffer with integer
// rasterization primitives, and a session type that transmits the buffer
// to the terminal through the kitty graphics protocol.
//
// Features:
//   - Fixed-size RGBA pixel grid, no reallocation after construction
//   - Bresenham lines, rect fill/stroke, midpoint circles, span fills
//   - All primitives clip silently instead of failing
//   - Session lifecycle with exactly-once delete on teardown
//   - Fixed-interval render loop with an explicit cancellation handle
//
// A Framebuffer is single-writer: the owning task draws and renders, nothing
// else touches the pixel store. Sessions sharing one output sink must have
// their renders serialized by the caller.
package canvas
