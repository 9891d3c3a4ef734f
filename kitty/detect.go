package kitty

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Supported reports whether the terminal likely understands the graphics
// protocol. This is a best-effort guess from environment signals, never a
// guarantee: an unrecognized terminal may still support the protocol, and a
// recognized one may sit behind a multiplexer that strips it. Callers may
// emit commands regardless; an unsupported terminal simply does not display
// the image.
func Supported() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && supportedEnv()
}

// supportedEnv checks environment signals left by emulators known to speak
// the protocol
func supportedEnv() bool {
	if os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("WEZTERM_PANE") != "" ||
		os.Getenv("GHOSTTY_RESOURCES_DIR") != "" {
		return true
	}

	termEnv := os.Getenv("TERM")
	if strings.Contains(termEnv, "kitty") || strings.Contains(termEnv, "ghostty") {
		return true
	}

	switch os.Getenv("TERM_PROGRAM") {
	case "WezTerm", "ghostty":
		return true
	}

	return false
}
