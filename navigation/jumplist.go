// Package navigation provides a bounded linear jump list over mixer strip
// positions, vi-style: jumping somewhere pushes the origin, Back and
// Forward walk the recorded positions.
package navigation

// JumpList is a bounded linear history of positions
// Pushing while the cursor sits mid-history truncates the forward tail;
// exceeding capacity drops the oldest entry
type JumpList struct {
	entries []int
	cursor  int // index of the current entry, len(entries) when past the end
	cap     int
}

// NewJumpList creates a jump list holding at most capacity entries
// Capacities below 1 are clamped to 1
func NewJumpList(capacity int) *JumpList {
	if capacity < 1 {
		capacity = 1
	}
	return &JumpList{cap: capacity, entries: make([]int, 0, capacity)}
}

// Len returns the number of recorded positions
func (j *JumpList) Len() int { return len(j.entries) }

// Push records a position and moves the cursor past the end
// Consecutive duplicates are collapsed
func (j *JumpList) Push(pos int) {
	j.entries = j.entries[:j.cursor]
	if n := len(j.entries); n > 0 && j.entries[n-1] == pos {
		j.cursor = n
		return
	}
	if len(j.entries) == j.cap {
		copy(j.entries, j.entries[1:])
		j.entries = j.entries[:j.cap-1]
	}
	j.entries = append(j.entries, pos)
	j.cursor = len(j.entries)
}

// Back moves the cursor one entry backwards and returns that position
// current is recorded first when stepping off the live end, so Forward can
// return to it. ok is false at the oldest entry.
func (j *JumpList) Back(current int) (pos int, ok bool) {
	if j.cursor == 0 {
		return 0, false
	}
	if j.cursor == len(j.entries) {
		// Stepping off the live end; record where we came from
		if j.entries[j.cursor-1] != current {
			if len(j.entries) == j.cap {
				copy(j.entries, j.entries[1:])
				j.entries = j.entries[:j.cap-1]
				j.cursor--
			}
			j.entries = append(j.entries, current)
		}
	}
	j.cursor--
	return j.entries[j.cursor], true
}

// Forward moves the cursor one entry forwards and returns that position
// ok is false at the newest entry
func (j *JumpList) Forward() (pos int, ok bool) {
	if j.cursor >= len(j.entries)-1 {
		return 0, false
	}
	j.cursor++
	return j.entries[j.cursor], true
}
