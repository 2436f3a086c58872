package model

const defaultHistoryDepth = 5

// History keeps the hashes of recently seen grids to detect still lifes and short cycles
type History struct {
	depth  int
	hashes []string
}

// NewHistory creates a history remembering up to depth grids
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = defaultHistoryDepth
	}
	return &History{depth: depth}
}

// Record adds the grid to history, dropping the oldest entry when full
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.Hash())
	if len(h.hashes) > h.depth {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether g repeats one of the last three recorded grids
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets every recorded grid
func (h *History) Reset() {
	h.hashes = nil
}
