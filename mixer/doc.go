// Package mixer renders the channel-strip board on a tcell screen.
//
// Widgets draw through clipped Regions so a strip can never write outside
// its column. The waveform view is the bridge to the graphics subsystem:
// it rasterizes peak data into a canvas session and emits the kitty
// placeholder glyphs as ordinary cells, leaving layout to the text grid.
package mixer
