package model

// defaultHistorySize keeps enough generations to spot period 1-3 cycles.
const defaultHistorySize = 5

// History stores recent grid states for cycle detection
type History struct {
	hashes []string
	size   int
}

// NewHistory returns a history holding the last size generations.
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds the current state to history and maintains size
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// Len returns the number of recorded generations.
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets all recorded generations.
func (h *History) Reset() {
	h.hashes = h.hashes[:0]
}

// IsStagnant checks whether g repeats one of the last three recorded states,
// i.e. it is static or cycling with period 2 or 3.
func (h *History) IsStagnant(g *Grid) bool {
	current := g.Hash()
	for back := 1; back <= 3 && back <= len(h.hashes); back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}
