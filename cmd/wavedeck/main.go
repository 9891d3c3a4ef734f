package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/wavedeck/wavedeck/audio"
	"github.com/wavedeck/wavedeck/canvas"
	"github.com/wavedeck/wavedeck/kitty"
	"github.com/wavedeck/wavedeck/project"
)

var (
	dirFlag      = flag.String("dir", ".", "Directory with WAV stems and project files")
	projectFlag  = flag.String("project", "untitled", "Project name to load/save")
	fpsFlag      = flag.Int("fps", 60, "Render loop frequency")
	graphicsFlag = flag.String("graphics", "auto", "Waveform graphics: auto, on, off")
	waveRowsFlag = flag.Int("wave-rows", 8, "Height of the waveform view in cells")
)

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	// Restore the terminal before printing a crash, otherwise the trace
	// lands on the alternate screen and vanishes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nwavedeck crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	a, err := newApp(screen)
	if err != nil {
		screen.Fini()
		log.Fatalf("wavedeck: %v", err)
	}

	a.run()

	screen.Fini()
	if err := a.loop.Err(); err != nil {
		log.Fatalf("render loop: %v", err)
	}
}

// graphicsEnabled resolves the -graphics flag; auto defers to the
// best-effort protocol sniff
func graphicsEnabled() bool {
	switch *graphicsFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return kitty.Supported()
	}
}

// loadTracks builds the audio side from a saved project when one exists,
// falling back to scanning the directory for stems
func loadTracks(engine *audio.Engine) ([]*audio.Track, project.Project, error) {
	store := project.NewStore(*dirFlag)

	var proj project.Project
	if store.Exists(*projectFlag) {
		p, err := store.Load(*projectFlag)
		if err != nil {
			return nil, proj, err
		}
		proj = p
	} else {
		paths, err := project.ScanWAVs(*dirFlag)
		if err != nil {
			return nil, proj, err
		}
		proj = project.Project{Name: *projectFlag}
		for _, p := range paths {
			proj.Tracks = append(proj.Tracks, project.TrackRef{Path: p, Gain: 1})
		}
	}

	var tracks []*audio.Track
	for _, ref := range proj.Tracks {
		t, err := audio.Load(ref.Path, engine.Rate())
		if err != nil {
			for _, loaded := range tracks {
				loaded.Close()
			}
			return nil, proj, err
		}
		t.SetGain(ref.Gain)
		t.SetPan(ref.Pan)
		t.SetMuted(ref.Muted)
		tracks = append(tracks, t)
	}
	return tracks, proj, nil
}

// waveWindow sizes the waveform view: full terminal width, fixed rows
func waveWindow(screen tcell.Screen) canvas.Window {
	w, _ := screen.Size()
	cols := w
	if cols > len(kitty.DiacriticTable) {
		cols = len(kitty.DiacriticTable)
	}
	rows := *waveRowsFlag
	if rows > len(kitty.DiacriticTable) {
		rows = len(kitty.DiacriticTable)
	}
	return canvas.Window{Cols: cols, Rows: rows}
}
