package canvas

import (
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the default loop tick interval, about 60 renders/second
const DefaultInterval = 16 * time.Millisecond

// Loop drives a draw-then-render step on a fixed tick
// Each tick performs one step synchronously; a slow output sink simply
// delays the next tick. A step error stops the loop and is retained.
type Loop struct {
	interval time.Duration
	step     func() error

	stopChan chan struct{}
	doneChan chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	mu  sync.Mutex
	err error
}

// NewLoop creates a loop invoking step at the given interval
// An interval of 0 or less uses DefaultInterval
func NewLoop(interval time.Duration, step func() error) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		interval: interval,
		step:     step,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start launches the tick goroutine; a second Start is a no-op
func (l *Loop) Start() {
	if !l.running.CompareAndSwap(false, true) {
		return
	}
	go l.run()
}

func (l *Loop) run() {
	defer close(l.doneChan)

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
			if err := l.step(); err != nil {
				l.mu.Lock()
				l.err = err
				l.mu.Unlock()
				return
			}
		}
	}
}

// Stop cancels the loop and blocks until the tick goroutine has exited, so
// no step runs against resources the caller is about to release
// Safe to call multiple times, and safe before Start
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
	if l.running.Load() {
		<-l.doneChan
	}
}

// Err returns the step error that stopped the loop, if any
func (l *Loop) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}
