// Package kitty encodes commands for the kitty terminal graphics protocol.
//
// Only the subset the mixer needs is modeled: direct RGBA transmission with
// Unicode-placeholder virtual placement, chunked transfer for large payloads,
// and deletion by image id. The encoder performs no I/O; it returns command
// strings for the caller to write to the terminal in order.
//
// Virtual placement anchors an image to placeholder glyphs that the text UI
// positions on the cell grid. Each glyph is the placeholder code point
// U+10EEEE combined with two diacritics that tag the glyph's row and column
// inside the image, so the emulator knows which cell maps to which pixel
// region. The emulator recovers the image id from the glyph's foreground
// color, which the caller sets when it draws the placeholder cells.
package kitty
