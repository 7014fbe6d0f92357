package log

import (
	"fmt"
	"io"
	"slices"
	"sync"
)

const defaultBufferCapacity = 100

// CircularBuffer is an [io.Writer] that keeps the most recent writes, one
// entry per call to Write. It holds log output while an interactive prompt
// owns the terminal, so the lines can be replayed afterwards.
// It is safe for concurrent use.
type CircularBuffer struct {
	entries [][]byte
	next    int
	size    int
	mu      sync.RWMutex
}

// NewCircularBuffer creates a buffer holding up to capacity entries.
// Non-positive values select a default.
func NewCircularBuffer(capacity int) *CircularBuffer {
	if capacity <= 0 {
		capacity = defaultBufferCapacity
	}

	return &CircularBuffer{entries: make([][]byte, capacity)}
}

// Write stores a copy of p, evicting the oldest entry when full.
func (cb *CircularBuffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.entries[cb.next] = slices.Clone(p)
	cb.next = (cb.next + 1) % len(cb.entries)
	cb.size = min(cb.size+1, len(cb.entries))

	return len(p), nil
}

// Entries returns copies of the stored entries, oldest first.
func (cb *CircularBuffer) Entries() [][]byte {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	if cb.size == 0 {
		return nil
	}

	start := (cb.next - cb.size + len(cb.entries)) % len(cb.entries)
	out := make([][]byte, 0, cb.size)

	for i := range cb.size {
		out = append(out, slices.Clone(cb.entries[(start+i)%len(cb.entries)]))
	}

	return out
}

func (cb *CircularBuffer) Size() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.size
}

func (cb *CircularBuffer) Capacity() int {
	return len(cb.entries)
}

func (cb *CircularBuffer) IsFull() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.size == len(cb.entries)
}

func (cb *CircularBuffer) Clear() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	clear(cb.entries)
	cb.next = 0
	cb.size = 0
}

// WriteTo replays the stored entries to w, oldest first.
func (cb *CircularBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, entry := range cb.Entries() {
		n, err := w.Write(entry)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write entry: %w", err)
		}
	}

	return total, nil
}
