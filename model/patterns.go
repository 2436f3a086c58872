package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

var (
	blockPattern = []string{
		"OO",
		"OO",
	}
	blinkerPattern = []string{
		"OOO",
	}
	gliderPattern = []string{
		".O.",
		"..O",
		"OOO",
	}
)

// Patterns maps the names accepted by AddPattern to their layouts
var Patterns = map[string][]string{
	"block":   blockPattern,
	"blinker": blinkerPattern,
	"glider":  gliderPattern,
}

// AddBlock adds a 2x2 block still life with its top-left cell at origin
func (g *Grid) AddBlock(origin Coord) error {
	return g.place("block", origin, blockPattern)
}

// AddBlinker adds a horizontal blinker oscillator starting at origin
func (g *Grid) AddBlinker(origin Coord) error {
	return g.place("blinker", origin, blinkerPattern)
}

// AddGlider adds a glider pattern with its top-left corner at origin
func (g *Grid) AddGlider(origin Coord) error {
	return g.place("glider", origin, gliderPattern)
}

// AddPattern adds one of the named Patterns at origin
func (g *Grid) AddPattern(name string, origin Coord) error {
	pattern, ok := Patterns[name]
	if !ok {
		return errors.Wrapf(ErrInvalidPattern, "[AddPattern] unknown pattern: %+v", name)
	}
	return g.place(name, origin, pattern)
}

// place writes every cell of the pattern footprint, or nothing if any cell falls outside the grid
func (g *Grid) place(name string, origin Coord, pattern []string) error {
	for row, line := range pattern {
		last := Coord{Row: origin.Row + row, Col: origin.Col + len(line) - 1}
		if !g.InBounds(Coord{Row: origin.Row + row, Col: origin.Col}) || !g.InBounds(last) {
			return errors.Wrapf(ErrOutOfBounds, "[place] %s at %v does not fit %dx%d grid", name, origin, g.size, g.size)
		}
	}

	for row, line := range pattern {
		for col, r := range line {
			state := Dead
			if r == aliveRune {
				state = Alive
			}
			g.cells[origin.Row+row][origin.Col+col] = state
		}
	}
	return nil
}

// Randomize marks each cell alive with the given probability
func (g *Grid) Randomize(density float64, rng *rand.Rand) {
	for row := range g.size {
		for col := range g.size {
			if rng.Float64() < density {
				g.cells[row][col] = Alive
			} else {
				g.cells[row][col] = Dead
			}
		}
	}
}
