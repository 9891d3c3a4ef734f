package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/wavedeck/wavedeck/audio"
	"github.com/wavedeck/wavedeck/canvas"
	"github.com/wavedeck/wavedeck/mixer"
	"github.com/wavedeck/wavedeck/project"
)

// Image id for the single waveform placement; ids only need to be unique
// per output sink and the app keeps one image alive at a time
const waveImageID = 1

// app owns all mutable state. Every mutation happens inside the render
// loop's step, so there is exactly one logical task touching the mixer,
// the tracks and the canvas session.
type app struct {
	screen   tcell.Screen
	engine   *audio.Engine
	tracks   []*audio.Track
	peaks    [][]audio.Peak
	board    *mixer.Board
	wave     *mixer.WaveView
	store    *project.Store
	proj     project.Project
	graphics bool

	loop     *canvas.Loop
	events   chan tcell.Event
	quit     chan struct{}
	quitOnce sync.Once
	pending  int // digits typed for a numbered jump, -1 when none
}

func newApp(screen tcell.Screen) (*app, error) {
	engine := audio.NewEngine(0)
	if err := engine.Init(); err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	tracks, proj, err := loadTracks(engine)
	if err != nil {
		return nil, err
	}
	if len(tracks) == 0 {
		return nil, fmt.Errorf("no WAV files in %s", *dirFlag)
	}

	win := waveWindow(screen)
	wave := mixer.NewWaveView(os.Stdout, waveImageID, win)

	a := &app{
		screen:   screen,
		engine:   engine,
		tracks:   tracks,
		wave:     wave,
		store:    project.NewStore(*dirFlag),
		proj:     proj,
		graphics: graphicsEnabled(),
		events:   make(chan tcell.Event, 64),
		quit:     make(chan struct{}),
		pending:  -1,
	}

	strips := make([]*mixer.Strip, len(tracks))
	a.peaks = make([][]audio.Peak, len(tracks))
	for i, t := range tracks {
		strips[i] = &mixer.Strip{Name: t.Name, Gain: t.Gain(), Pan: t.Pan(), Muted: t.Muted()}
		pk, err := audio.Peaks(t.Path, win.Cols*mixer.CellPixelW)
		if err != nil {
			return nil, err
		}
		a.peaks[i] = pk
		engine.Add(t.Streamer())
	}
	a.board = mixer.NewBoard(strips, wave)
	wave.SetPeaks(a.peaks[0])

	fps := *fpsFlag
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	a.loop = canvas.NewLoop(interval, a.step)
	return a, nil
}

// run starts the loop, pumps terminal events until quit, then tears down
// in order: cancel loop, delete placement, silence audio
func (a *app) run() {
	a.loop.Start()

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case a.events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	<-a.quit
	a.loop.Stop()

	if err := a.wave.Destroy(); err != nil {
		fmt.Fprintf(os.Stderr, "wavedeck: %v\n", err)
	}
	for _, t := range a.tracks {
		t.Close()
	}
	a.engine.Cleanup()
}

func (a *app) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// step is one tick: drain input, refresh meters and playhead, draw the
// text layer, then transmit the waveform if it changed
func (a *app) step() error {
	for {
		select {
		case ev := <-a.events:
			a.handle(ev)
		default:
			return a.frame()
		}
	}
}

func (a *app) frame() error {
	sel := a.board.Selected()
	for i, t := range a.tracks {
		a.board.Strips[i].Level = a.levelFor(i, t)
	}
	a.wave.SetProgress(a.tracks[sel].Progress())

	a.screen.Clear()
	a.board.Draw(a.screen)
	a.screen.Show()

	if a.graphics {
		if err := a.wave.Render(); err != nil {
			a.stop()
			return err
		}
	}
	return nil
}

// levelFor derives a meter deflection from the peak bucket under the
// playhead, scaled by the fader
func (a *app) levelFor(i int, t *audio.Track) float64 {
	if t.Paused() || t.Muted() {
		return 0
	}
	pk := a.peaks[i]
	if len(pk) == 0 {
		return 0
	}
	b := int(t.Progress() * float64(len(pk)-1))
	amp := pk[b].Max
	if -pk[b].Min > amp {
		amp = -pk[b].Min
	}
	level := amp * t.Gain()
	if level > 1 {
		level = 1
	}
	return level
}

func (a *app) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *app) handleKey(ev *tcell.EventKey) {
	sel := a.board.Selected()
	track := a.tracks[sel]
	strip := a.board.Strips[sel]

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.stop()
		return
	case tcell.KeyLeft:
		a.moveSelection(sel - 1)
		return
	case tcell.KeyRight:
		a.moveSelection(sel + 1)
		return
	case tcell.KeyUp:
		a.setGain(track, strip, track.Gain()+0.05)
		return
	case tcell.KeyDown:
		a.setGain(track, strip, track.Gain()-0.05)
		return
	case tcell.KeyCtrlO:
		a.board.JumpBack()
		a.syncWave()
		return
	case tcell.KeyCtrlI:
		a.board.JumpForward()
		a.syncWave()
		return
	}

	if ev.Key() != tcell.KeyRune {
		return
	}

	r := ev.Rune()
	if r >= '0' && r <= '9' {
		// Numbered jump, vi count style: digits accumulate, 'G' commits
		if a.pending < 0 {
			a.pending = 0
		}
		a.pending = a.pending*10 + int(r-'0')
		return
	}

	switch r {
	case 'q':
		a.stop()
	case 'h':
		a.moveSelection(sel - 1)
	case 'l':
		a.moveSelection(sel + 1)
	case 'k':
		a.setGain(track, strip, track.Gain()+0.05)
	case 'j':
		a.setGain(track, strip, track.Gain()-0.05)
	case ',':
		a.setPan(track, strip, track.Pan()-0.1)
	case '.':
		a.setPan(track, strip, track.Pan()+0.1)
	case 'm':
		track.SetMuted(!track.Muted())
		strip.Muted = track.Muted()
	case ' ':
		paused := !track.Paused()
		for _, t := range a.tracks {
			t.SetPaused(paused)
		}
	case 'r':
		for _, t := range a.tracks {
			if err := t.Rewind(); err != nil {
				fmt.Fprintf(os.Stderr, "wavedeck: %v\n", err)
			}
		}
	case 'g':
		a.board.Jump(0)
		a.syncWave()
	case 'G':
		target := len(a.tracks) - 1
		if a.pending > 0 {
			target = a.pending - 1
		}
		a.pending = -1
		a.board.Jump(target)
		a.syncWave()
	case 's':
		a.saveProject()
	}
}

func (a *app) moveSelection(i int) {
	a.board.Select(i)
	a.syncWave()
}

// syncWave repoints the waveform view at the selected track
func (a *app) syncWave() {
	a.wave.SetPeaks(a.peaks[a.board.Selected()])
}

func (a *app) setGain(t *audio.Track, s *mixer.Strip, gain float64) {
	if gain > 2 {
		gain = 2
	}
	if gain < 0 {
		gain = 0
	}
	t.SetGain(gain)
	s.Gain = gain
}

func (a *app) setPan(t *audio.Track, s *mixer.Strip, pan float64) {
	t.SetPan(pan)
	s.Pan = t.Pan()
}

func (a *app) saveProject() {
	a.proj.Name = *projectFlag
	a.proj.Tracks = a.proj.Tracks[:0]
	for _, t := range a.tracks {
		a.proj.Tracks = append(a.proj.Tracks, project.TrackRef{
			Path:  t.Path,
			Gain:  t.Gain(),
			Pan:   t.Pan(),
			Muted: t.Muted(),
		})
	}
	if err := a.store.Save(a.proj); err != nil {
		fmt.Fprintf(os.Stderr, "wavedeck: save: %v\n", err)
	}
}
