package canvas

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// TestLoopTicks verifies the step runs repeatedly until Stop
func TestLoopTicks(t *testing.T) {
	var ticks atomic.Int32
	l := NewLoop(time.Millisecond, func() error {
		ticks.Add(1)
		return nil
	})
	l.Start()

	deadline := time.After(time.Second)
	for ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("Expected at least 3 ticks within a second")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	l.Stop()

	if err := l.Err(); err != nil {
		t.Errorf("Expected no loop error, got %v", err)
	}
}

// TestLoopStopBlocksUntilExit verifies no step runs after Stop returns
func TestLoopStopBlocksUntilExit(t *testing.T) {
	var ticks atomic.Int32
	l := NewLoop(time.Millisecond, func() error {
		ticks.Add(1)
		return nil
	})
	l.Start()

	for ticks.Load() == 0 {
		time.Sleep(time.Millisecond)
	}
	l.Stop()

	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	if got := ticks.Load(); got != after {
		t.Errorf("Expected no ticks after Stop, got %d more", got-after)
	}
}

// TestLoopStopIdempotent verifies repeated and pre-Start Stop are safe
func TestLoopStopIdempotent(t *testing.T) {
	l := NewLoop(time.Millisecond, func() error { return nil })
	l.Stop()
	l.Stop()

	l2 := NewLoop(time.Millisecond, func() error { return nil })
	l2.Start()
	l2.Stop()
	l2.Stop()
}

// TestLoopStepErrorStops verifies a step error halts the loop and is retained
func TestLoopStepErrorStops(t *testing.T) {
	stepErr := errors.New("sink gone")
	var ticks atomic.Int32
	l := NewLoop(time.Millisecond, func() error {
		ticks.Add(1)
		return stepErr
	})
	l.Start()

	deadline := time.After(time.Second)
	for l.Err() == nil {
		select {
		case <-deadline:
			t.Fatal("Expected loop to stop on step error")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	time.Sleep(10 * time.Millisecond)

	if got := ticks.Load(); got != 1 {
		t.Errorf("Expected exactly 1 tick, got %d", got)
	}
	if !errors.Is(l.Err(), stepErr) {
		t.Errorf("Expected retained step error, got %v", l.Err())
	}
}
