package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	aliveRune = 'O'
	deadRune  = '.'
)

// CellState is the state of a single cell
type CellState uint8

const (
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Coord addresses a cell by row and column
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a fixed-size square board of cells. The zero value is an empty grid.
type Grid struct {
	size  int
	cells [][]CellState
}

// New creates an n×n grid with every cell dead
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[New] size must be positive, got: %d", n)
	}
	return newGrid(n), nil
}

func newGrid(n int) *Grid {
	cells := make([][]CellState, n)
	for i := range cells {
		cells[i] = make([]CellState, n)
	}
	return &Grid{
		size:  n,
		cells: cells,
	}
}

// Size returns the side length of the grid
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether c lies inside the grid
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// Get returns the state of a cell
func (g *Grid) Get(c Coord) (CellState, error) {
	if !g.InBounds(c) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[Get] %v outside %dx%d grid", c, g.size, g.size)
	}
	return g.cells[c.Row][c.Col], nil
}

// Set sets the state of a single cell
func (g *Grid) Set(c Coord, state CellState) error {
	if !g.InBounds(c) {
		return errors.Wrapf(ErrOutOfBounds, "[Set] %v outside %dx%d grid", c, g.size, g.size)
	}
	g.cells[c.Row][c.Col] = state
	return nil
}

// Toggle flips a cell between alive and dead
func (g *Grid) Toggle(c Coord) error {
	state, err := g.Get(c)
	if err != nil {
		return errors.Wrap(err, "[Toggle] failed to read cell")
	}
	if state == Alive {
		return g.Set(c, Dead)
	}
	return g.Set(c, Alive)
}

// IsAlive reports whether a cell is alive. Coordinates outside the grid read as dead.
func (g *Grid) IsAlive(c Coord) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == Alive
}

// Coordinates returns every coordinate of the grid in row-major order
func (g *Grid) Coordinates() []Coord {
	coords := make([]Coord, 0, g.size*g.size)
	for row := range g.size {
		for col := range g.size {
			coords = append(coords, Coord{Row: row, Col: col})
		}
	}
	return coords
}

// Clear marks every cell dead
func (g *Grid) Clear() {
	for row := range g.size {
		for col := range g.size {
			g.cells[row][col] = Dead
		}
	}
}

// reset resizes the grid and clears it, reusing row storage where possible
func (g *Grid) reset(n int) {
	g.size = n
	if len(g.cells) != n {
		g.cells = make([][]CellState, n)
	}
	for i := range g.cells {
		if len(g.cells[i]) != n {
			g.cells[i] = make([]CellState, n)
		} else {
			for j := range g.cells[i] {
				g.cells[i][j] = Dead
			}
		}
	}
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	clone := newGrid(g.size)
	for row := range g.size {
		copy(clone.cells[row], g.cells[row])
	}
	return clone
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}

// CountLiving returns the total number of living cells
func (g *Grid) CountLiving() (count int) {
	for row := range g.size {
		for col := range g.size {
			if g.cells[row][col] == Alive {
				count++
			}
		}
	}
	return
}

// Map builds a new grid whose cells are fn applied to each coordinate.
// Rows are split across workers goroutines; g is only read. A nil pool
// allocates a fresh grid.
func (g *Grid) Map(workers int, pool *GridPool, fn func(Coord) CellState) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.size)
	} else {
		next = newGrid(g.size)
	}
	if g.size == 0 {
		return next
	}

	workers = max(1, min(workers, g.size))

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.size + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.size)
		)
		if startRow >= g.size {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				for col := range g.size {
					next.cells[row][col] = fn(Coord{Row: row, Col: col})
				}
			}
			return nil
		})
	}

	// workers never return an error
	_ = eg.Wait()

	return next
}

// Hash returns an MD5 digest of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	for row := range g.size {
		for col := range g.size {
			h.Write([]byte{byte(g.cells[row][col])})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders one line per row, 'O' for alive and '.' for dead
func (g *Grid) String() string {
	var sb strings.Builder
	for row := range g.size {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range g.size {
			if g.cells[row][col] == Alive {
				sb.WriteRune(aliveRune)
			} else {
				sb.WriteRune(deadRune)
			}
		}
	}
	return sb.String()
}

// Parse reads a grid in the format produced by String. Blank lines and
// surrounding whitespace are ignored; the remaining lines must form a square.
func Parse(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}

	g, err := New(len(lines))
	if err != nil {
		return nil, errors.Wrap(err, "[Parse] empty pattern")
	}

	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != g.size {
			return nil, errors.Wrapf(ErrInvalidSize,
				"[Parse] row %d has %d cells, want %d", row, len(runes), g.size)
		}
		for col, r := range runes {
			switch r {
			case aliveRune:
				g.cells[row][col] = Alive
			case deadRune:
				g.cells[row][col] = Dead
			default:
				return nil, errors.Wrapf(ErrInvalidPattern, "[Parse] unexpected %q at %v", r, Coord{Row: row, Col: col})
			}
		}
	}
	return g, nil
}
