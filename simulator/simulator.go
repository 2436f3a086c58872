// Package simulator advances a Game of Life grid by one generation at a time.
//
// Every function here treats its input grid as read-only: Step builds the next
// generation from the current one without touching it, so a renderer may keep
// drawing the old grid while the new one is computed.
package simulator

import (
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

// offsets of the eight cells sharing an edge or corner with a cell
var offsets = [8]model.Coord{
	{Row: -1, Col: -1}, {Row: -1, Col: 0}, {Row: -1, Col: 1},
	{Row: 0, Col: -1}, {Row: 0, Col: 1},
	{Row: 1, Col: -1}, {Row: 1, Col: 0}, {Row: 1, Col: 1},
}

// Simulator computes generations with an optional worker count and grid pool
type Simulator struct {
	workers int
	pool    *model.GridPool
}

// Option configures a Simulator
type Option func(*Simulator)

// WithWorkers sets how many goroutines compute a generation
func WithWorkers(n int) Option {
	return func(s *Simulator) {
		s.workers = max(1, n)
	}
}

// WithPool draws output grids from p instead of allocating them
func WithPool(p *model.GridPool) Option {
	return func(s *Simulator) {
		s.pool = p
	}
}

func New(opts ...Option) *Simulator {
	s := &Simulator{workers: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Neighbors returns the in-bounds coordinates adjacent to c, without wraparound
func Neighbors(g *model.Grid, c model.Coord) []model.Coord {
	neighbors := make([]model.Coord, 0, len(offsets))
	for _, off := range offsets {
		n := model.Coord{Row: c.Row + off.Row, Col: c.Col + off.Col}
		if g.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// CountLiveNeighbors returns how many neighbors of c are alive
func CountLiveNeighbors(g *model.Grid, c model.Coord) (count int) {
	for _, off := range offsets {
		if g.IsAlive(model.Coord{Row: c.Row + off.Row, Col: c.Col + off.Col}) {
			count++
		}
	}
	return
}

// Step returns the next generation of g
func (s *Simulator) Step(g *model.Grid) *model.Grid {
	if g == nil {
		return &model.Grid{}
	}
	return g.Map(s.workers, s.pool, func(c model.Coord) model.CellState {
		state := model.Dead
		if g.IsAlive(c) {
			state = model.Alive
		}
		return rules.Next(state, CountLiveNeighbors(g, c))
	})
}

// Run returns the next generations of g, oldest first
func (s *Simulator) Run(g *model.Grid, generations int) []*model.Grid {
	out := make([]*model.Grid, 0, max(generations, 0))
	for range generations {
		g = s.Step(g)
		out = append(out, g)
	}
	return out
}

var sequential = New()

// Step returns the next generation of g using a single worker
func Step(g *model.Grid) *model.Grid {
	return sequential.Step(g)
}
