package texel

// InMemoryBufferStore is a simple BufferStore backed by a [][]Cell slice. The
// runner keeps the last frame here to skip cells that did not change.
type InMemoryBufferStore struct {
	buf [][]Cell
}

// Snapshot returns the last saved buffer. Callers should treat the returned
// value as read-only.
func (s *InMemoryBufferStore) Snapshot() [][]Cell {
	return s.buf
}

// Save stores a copy of buf. Apps reuse their framebuffers between renders,
// so keeping the reference would make every diff empty.
func (s *InMemoryBufferStore) Save(buf [][]Cell) {
	if buf == nil {
		s.buf = nil
		return
	}
	out := make([][]Cell, len(buf))
	for y, row := range buf {
		out[y] = append([]Cell(nil), row...)
	}
	s.buf = out
}

// Clear resets the stored buffer.
func (s *InMemoryBufferStore) Clear() {
	s.buf = nil
}

// NewInMemoryBufferStore constructs an empty buffer store.
func NewInMemoryBufferStore() BufferStore {
	return &InMemoryBufferStore{}
}

// Changed reports whether the cell at (x, y) differs from the stored frame.
// Cells outside the stored frame always count as changed.
func Changed(prev [][]Cell, x, y int, cell Cell) bool {
	if y >= len(prev) || x >= len(prev[y]) {
		return true
	}
	return prev[y][x] != cell
}
